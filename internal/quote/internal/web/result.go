package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/quotemart/quotemart/internal/quote/internal/errs"
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
	notFoundResult = ginx.Result{
		Code: errs.QuoteNotFound.Code,
		Msg:  errs.QuoteNotFound.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
	referencedResult = ginx.Result{
		Code: errs.QuoteReferenced.Code,
		Msg:  errs.QuoteReferenced.Msg,
	}
)
