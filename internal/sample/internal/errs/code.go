package errs

var (
	SystemError  = ErrorCode{Code: 504001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 504002, Msg: "请填写完整的试样信息"}
	// InvalidStatusTransition 配送状态不允许这样迁移
	InvalidStatusTransition = ErrorCode{Code: 504003, Msg: "配送状态迁移非法"}
	SampleNotFound          = ErrorCode{Code: 504404, Msg: "试样申请不存在"}
	PermissionDenied        = ErrorCode{Code: 504403, Msg: "无权操作此试样申请"}
	// SampleNotEditable 试样申请不存在、非本人或已进入配送流程,不作区分
	SampleNotEditable = ErrorCode{Code: 504409, Msg: "试样申请不存在或已配送,无法修改"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
