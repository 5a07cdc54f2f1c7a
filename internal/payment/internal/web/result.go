package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/quotemart/quotemart/internal/payment/internal/errs"
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
	invalidAmountResult = ginx.Result{
		Code: errs.InvalidAmount.Code,
		Msg:  errs.InvalidAmount.Msg,
	}
	duplicateOrderNoResult = ginx.Result{
		Code: errs.DuplicateOrderNo.Code,
		Msg:  errs.DuplicateOrderNo.Msg,
	}
	notPaidResult = ginx.Result{
		Code: errs.NotPaid.Code,
		Msg:  errs.NotPaid.Msg,
	}
	paymentNotFoundResult = ginx.Result{
		Code: errs.PaymentNotFound.Code,
		Msg:  errs.PaymentNotFound.Msg,
	}
)
