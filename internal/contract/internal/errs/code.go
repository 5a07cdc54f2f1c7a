package errs

var (
	SystemError      = ErrorCode{Code: 505001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 505002, Msg: "请求参数有误"}
	ContractNotFound = ErrorCode{Code: 505404, Msg: "合同不存在"}
	PermissionDenied = ErrorCode{Code: 505403, Msg: "无权查看此合同"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
