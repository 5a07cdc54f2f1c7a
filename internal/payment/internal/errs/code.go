package errs

var (
	SystemError      = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 506002, Msg: "支付参数不完整"}
	InvalidAmount    = ErrorCode{Code: 506003, Msg: "支付金额无效"}
	DuplicateOrderNo = ErrorCode{Code: 506004, Msg: "支付单号已存在"}
	NotPaid          = ErrorCode{Code: 506005, Msg: "订单未支付"}
	PaymentNotFound  = ErrorCode{Code: 506404, Msg: "支付订单不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
