package errs

var (
	SystemError      = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 502002, Msg: "请填写完整的报价信息"}
	QuoteNotFound    = ErrorCode{Code: 502404, Msg: "报价单不存在"}
	PermissionDenied = ErrorCode{Code: 502403, Msg: "无权操作此报价单"}
	QuoteReferenced  = ErrorCode{Code: 502409, Msg: "报价单已有订单或样品申请,无法删除"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
