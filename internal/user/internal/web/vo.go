package web

type Profile struct {
	Id          int64  `json:"id"`
	Nickname    string `json:"nickname"`
	Avatar      string `json:"avatar"`
	Phone       string `json:"phone,omitempty"`
	IsCertified bool   `json:"isCertified"`
}

type WechatCallback struct {
	Code string `json:"code"`
}

type EditReq struct {
	Avatar   string `json:"avatar"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
}

type CertificationReq struct {
	CompanyName       string `json:"companyName"`
	LegalPerson       string `json:"legalPerson"`
	RegisteredAddress string `json:"registeredAddress"`
	BusinessLicense   string `json:"businessLicense"`
	LegalIdFront      string `json:"legalIdFront"`
	LegalIdBack       string `json:"legalIdBack"`
}

type CertificationResp struct {
	Id          int64  `json:"id"`
	CompanyName string `json:"companyName,omitempty"`
	LegalPerson string `json:"legalPerson,omitempty"`
	Status      uint8  `json:"status"`
	Ctime       int64  `json:"ctime,omitempty"`
}
