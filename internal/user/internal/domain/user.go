package domain

type User struct {
	Id       int64
	Avatar   string
	Nickname string
	SN       string
	Phone    string
	// IsCertified 企业认证是否通过
	IsCertified bool
	// 不要使用组合,将来可能还有其他登录渠道的 Info
	WechatInfo WechatInfo
	Ctime      int64
}
