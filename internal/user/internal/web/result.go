package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/quotemart/quotemart/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	alreadyCertifiedResult = ginx.Result{
		Code: errs.AlreadyCertified.Code,
		Msg:  errs.AlreadyCertified.Msg,
	}
	certificationPendingResult = ginx.Result{
		Code: errs.CertificationPending.Code,
		Msg:  errs.CertificationPending.Msg,
	}
)
