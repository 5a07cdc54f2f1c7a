package order

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/quotemart/quotemart/internal/order/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewOrderGORMDAO(db)
}
