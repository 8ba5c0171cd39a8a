package apierrors

const (
	MsgInvalidTodoID      = "invalidTodoID"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgInvalidListQuery   = "invalidListQuery"
	MsgTodoNotFound       = "todoNotFound"
	MsgValidationFailed   = "validationFailed"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailListTodos      = "failListTodos"
	MsgFailGetTodo        = "failGetTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"
)
