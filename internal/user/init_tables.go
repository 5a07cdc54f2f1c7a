package user

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/quotemart/quotemart/internal/user/internal/repository/dao"
)

var once = &sync.Once{}

func initTablesOnce(db *egorm.Component) {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitUserDAO(db *egorm.Component) dao.UserDAO {
	initTablesOnce(db)
	return dao.NewGORMUserDAO(db)
}

func InitCertificationDAO(db *egorm.Component) dao.CertificationDAO {
	initTablesOnce(db)
	return dao.NewGORMCertificationDAO(db)
}
