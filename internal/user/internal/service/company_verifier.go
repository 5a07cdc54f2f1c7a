package service

import (
	"context"
	"unicode/utf8"

	"github.com/gotomicro/ego/core/elog"
	"github.com/quotemart/quotemart/internal/user/internal/domain"
)

// autoCompanyVerifier 本地规则校验。
// TODO 对接营业执照 OCR 和工商信息查询接口后替换
type autoCompanyVerifier struct {
	logger *elog.Component
}

func NewAutoCompanyVerifier() CompanyVerifier {
	return &autoCompanyVerifier{logger: elog.DefaultLogger}
}

func (v *autoCompanyVerifier) Verify(_ context.Context, c domain.Certification) (bool, error) {
	// 企业名称太短的直接转人工
	if utf8.RuneCountInString(c.CompanyName) < 4 {
		return false, nil
	}
	if utf8.RuneCountInString(c.LegalPerson) < 2 {
		return false, nil
	}
	v.logger.Info("企业自动审核通过",
		elog.Int64("uid", c.Uid),
		elog.String("companyName", c.CompanyName))
	return true, nil
}
