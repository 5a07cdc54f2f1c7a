package test

// Result 测试里解析 web 层响应用的信封,和 ginx.Result 对齐
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
