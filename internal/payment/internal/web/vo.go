package web

import (
	"github.com/quotemart/quotemart/internal/payment/internal/domain"
)

type PrepayReq struct {
	OrderNo string `json:"orderNo"`
	// 金额,单位为分
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	// 1=解锁报价单 2=生成合同
	Type      uint8 `json:"type"`
	RelatedID int64 `json:"relatedId"`
}

// PrepayResp 小程序 wx.requestPayment 所需的全部参数
type PrepayResp struct {
	AppID     string `json:"appId"`
	TimeStamp string `json:"timeStamp"`
	NonceStr  string `json:"nonceStr"`
	Package   string `json:"package"`
	SignType  string `json:"signType"`
	PaySign   string `json:"paySign"`
	OrderNo   string `json:"orderNo"`
}

type OrderNoReq struct {
	OrderNo string `json:"orderNo"`
}

type Payment struct {
	OrderNo     string `json:"orderNo"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Type        uint8  `json:"type"`
	RelatedID   int64  `json:"relatedId"`
	Status      uint8  `json:"status"`
	TxnID       string `json:"txnId,omitempty"`
	Ctime       int64  `json:"ctime"`
	PaidAt      int64  `json:"paidAt,omitempty"`
}

func newPayment(p domain.Payment) Payment {
	return Payment{
		OrderNo:     p.OrderNo,
		Amount:      p.Amount,
		Description: p.Description,
		Type:        p.Type.ToUint8(),
		RelatedID:   p.RelatedID,
		Status:      p.Status.ToUint8(),
		TxnID:       p.TxnID,
		Ctime:       p.Ctime,
		PaidAt:      p.PaidAt,
	}
}
