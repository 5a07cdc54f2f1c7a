package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/quotemart/quotemart/internal/sample/internal/errs"
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
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidStatusTransition.Code,
		Msg:  errs.InvalidStatusTransition.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.SampleNotFound.Code,
		Msg:  errs.SampleNotFound.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
	notEditableResult = ginx.Result{
		Code: errs.SampleNotEditable.Code,
		Msg:  errs.SampleNotEditable.Msg,
	}
)
