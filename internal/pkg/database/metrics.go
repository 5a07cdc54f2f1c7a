// Copyright 2024 quotemart
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// GormMetricsPlugin 实现 gorm.Plugin 接口
// 按操作类型和表名采集 SQL 执行耗时
type GormMetricsPlugin struct {
	summary *prometheus.SummaryVec
}

func NewGormMetricsPlugin(namespace string) *GormMetricsPlugin {
	summary := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: namespace,
		Subsystem: "gorm",
		Name:      "query_duration_seconds",
		Help:      "SQL 执行耗时",
		Objectives: map[float64]float64{
			0.5:  0.01,
			0.9:  0.01,
			0.99: 0.005,
		},
	}, []string{"op", "table"})
	prometheus.MustRegister(summary)
	return &GormMetricsPlugin{summary: summary}
}

func (p *GormMetricsPlugin) Name() string {
	return "GormMetricsPlugin"
}

// Initialize 注册 GORM 回调
func (p *GormMetricsPlugin) Initialize(db *gorm.DB) error {
	// 查询操作
	if err := db.Callback().Query().Before("gorm:query").Register("metrics:before_query", p.before); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("metrics:after_query", p.after("query")); err != nil {
		return err
	}

	// 创建操作
	if err := db.Callback().Create().Before("gorm:create").Register("metrics:before_create", p.before); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("metrics:after_create", p.after("create")); err != nil {
		return err
	}

	// 更新操作
	if err := db.Callback().Update().Before("gorm:update").Register("metrics:before_update", p.before); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("metrics:after_update", p.after("update")); err != nil {
		return err
	}

	// 删除操作
	if err := db.Callback().Delete().Before("gorm:delete").Register("metrics:before_delete", p.before); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("metrics:after_delete", p.after("delete")); err != nil {
		return err
	}

	// 原始SQL操作
	if err := db.Callback().Raw().Before("gorm:raw").Register("metrics:before_raw", p.before); err != nil {
		return err
	}
	return db.Callback().Raw().After("gorm:raw").Register("metrics:after_raw", p.after("raw"))
}

func (p *GormMetricsPlugin) before(db *gorm.DB) {
	db.Set(startTimeKey, time.Now())
}

func (p *GormMetricsPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.Get(startTimeKey)
		if !ok {
			return
		}
		start, ok := val.(time.Time)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		p.summary.WithLabelValues(op, table).Observe(time.Since(start).Seconds())
	}
}
