package contract

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/quotemart/quotemart/internal/contract/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ContractDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewContractGORMDAO(db)
}
