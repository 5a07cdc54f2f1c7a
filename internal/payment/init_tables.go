package payment

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/quotemart/quotemart/internal/payment/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewPaymentGORMDAO(db)
}
