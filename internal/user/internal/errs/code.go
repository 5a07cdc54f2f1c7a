package errs

var (
	SystemError          = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidInput         = ErrorCode{Code: 501002, Msg: "请填写完整的企业认证信息"}
	AlreadyCertified     = ErrorCode{Code: 501003, Msg: "您已完成认证"}
	CertificationPending = ErrorCode{Code: 501004, Msg: "您的认证正在审核中"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
