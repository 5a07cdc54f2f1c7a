package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/quotemart/quotemart/internal/order/internal/errs"
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
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
	notEditableResult = ginx.Result{
		Code: errs.OrderNotEditable.Code,
		Msg:  errs.OrderNotEditable.Msg,
	}
)
