package domain

type CertificationStatus uint8

func (s CertificationStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// CertificationStatusPending 自动审核未通过,转人工
	CertificationStatusPending  CertificationStatus = 1
	CertificationStatusApproved CertificationStatus = 2
)

// Certification 企业认证申请,一个用户最多一条生效记录
type Certification struct {
	Id  int64
	Uid int64
	// 企业名称
	CompanyName string
	// 法人姓名
	LegalPerson string
	// 注册地址
	RegisteredAddress string
	// 营业执照图片
	BusinessLicense string
	// 法人身份证正反面图片
	LegalIdFront string
	LegalIdBack  string
	Status       CertificationStatus
	Ctime        int64
	Utime        int64
}
