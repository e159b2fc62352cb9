package apierrors

const (
	MsgInvalidProjectID      = "invalidProjectID"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgProjectNotFound       = "projectNotFound"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailGetProject        = "failGetProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailGetTask        = "failGetTask"
	MsgFailListTasks      = "failListTasks"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
)
