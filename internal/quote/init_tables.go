package quote

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/quotemart/quotemart/internal/quote/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.QuoteDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewQuoteGORMDAO(db)
}
