package sample

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/quotemart/quotemart/internal/sample/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.SampleDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewSampleGORMDAO(db)
}
