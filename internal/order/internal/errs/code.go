package errs

var (
	SystemError  = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 503002, Msg: "请填写完整的订单信息"}
	// InvalidStatusTransition 配送状态不允许这样迁移
	InvalidStatusTransition = ErrorCode{Code: 503003, Msg: "配送状态迁移非法"}
	OrderNotFound           = ErrorCode{Code: 503404, Msg: "订单不存在"}
	// PermissionDenied 故意用模糊文案,不暴露订单是否存在
	PermissionDenied = ErrorCode{Code: 503403, Msg: "无权操作此订单"}
	// OrderNotEditable 订单不存在、非本人或已进入配送流程,不作区分
	OrderNotEditable = ErrorCode{Code: 503409, Msg: "订单不存在或已配送,无法修改"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
