package domain

type WechatInfo struct {
	// OpenId 是应用内唯一
	OpenId string
	// UnionId 是整个公司账号内唯一
	UnionId string
	// MiniOpenId 小程序内唯一,调起支付用它
	MiniOpenId string
}
