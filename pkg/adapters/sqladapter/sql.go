package sqladapter

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/oarkflow/log"
	"github.com/oarkflow/squealx"

	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/utils"
	"github.com/oarkflow/edi/pkg/utils/sqlutil"
)

// Adapter loads flattened claim rows into a relational table, or streams a
// table back out as records.
type Adapter struct {
	Db              *squealx.DB
	mode            string
	Table           string
	truncate        bool
	query           string
	AutoCreate      bool
	Created         bool
	Driver          string
	NormalizeSchema map[string]string
}

// NewLoader creates a loader writing into table. When autoCreate is set the
// table is created from the first record's shape.
func NewLoader(db *squealx.DB, driver, table string, truncate, autoCreate bool, normalizeSchema map[string]string) *Adapter {
	return &Adapter{
		Db:              db,
		Table:           table,
		truncate:        truncate,
		AutoCreate:      autoCreate,
		Driver:          driver,
		NormalizeSchema: normalizeSchema,
		mode:            "loader",
	}
}

// NewSource creates a source reading from table, or from query when set.
func NewSource(db *squealx.DB, driver, table, query string) *Adapter {
	return &Adapter{Db: db, Driver: driver, Table: table, query: query}
}

func (l *Adapter) Setup(ctx context.Context) error {
	if l.mode != "loader" || !l.truncate {
		return nil
	}
	exists, err := tableExists(l.Db, l.Table, l.Driver)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	var truncateSQL string
	switch l.Driver {
	case "postgres", "mysql":
		truncateSQL = fmt.Sprintf("TRUNCATE TABLE %s", l.Table)
	case "sqlite", "sqlite3":
		truncateSQL = fmt.Sprintf("DELETE FROM %s", l.Table)
	default:
		return fmt.Errorf("unsupported driver: %s", l.Driver)
	}
	if _, err := l.Db.ExecContext(ctx, truncateSQL); err != nil {
		return fmt.Errorf("truncate error for table %s: %v", l.Table, err)
	}
	return nil
}

func tableExists(db *squealx.DB, tableName, driver string) (bool, error) {
	var count int
	var query string
	switch driver {
	case "mysql", "postgres":
		query = fmt.Sprintf("SELECT COUNT(*) FROM information_schema.tables WHERE table_name = '%s'", tableName)
	case "sqlite", "sqlite3":
		query = fmt.Sprintf("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='%s'", tableName)
	default:
		return false, fmt.Errorf("unsupported driver: %s", driver)
	}
	if err := db.QueryRow(query).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (l *Adapter) StoreBatch(_ context.Context, batch []utils.Record) error {
	if len(batch) == 0 {
		return nil
	}
	if l.AutoCreate && !l.Created {
		if err := sqlutil.CreateTableFromRecord(l.Db, l.Driver, l.Table, l.NormalizeSchema); err != nil {
			return err
		}
		l.Created = true
	}
	var keys []string
	for k := range batch[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	valPlaceholders := make([]string, 0, len(keys))
	for _, k := range keys {
		valPlaceholders = append(valPlaceholders, fmt.Sprintf(":%s", k))
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		l.Table, strings.Join(keys, ", "), strings.Join(valPlaceholders, ", "))
	_, err := l.Db.NamedExec(q, batch)
	return err
}

func (l *Adapter) StoreSingle(ctx context.Context, rec utils.Record) error {
	return l.StoreBatch(ctx, []utils.Record{rec})
}

// Extract streams the table (or a custom query) as records. SourceOption can
// override the table, substitute a query, and bind query arguments.
func (l *Adapter) Extract(ctx context.Context, opts ...contracts.Option) (<-chan utils.Record, error) {
	var opt contracts.SourceOption
	for _, op := range opts {
		op(&opt)
	}
	table, query := l.Table, l.query
	if opt.Table != "" {
		table = opt.Table
	}
	if opt.Query != "" {
		query = opt.Query
	}
	q := query
	if q == "" {
		q = fmt.Sprintf("SELECT * FROM %s", table)
	}
	out := make(chan utils.Record, 100)
	go func(query string) {
		defer close(out)
		var rows squealx.SQLRows
		var err error
		if len(opt.Args) > 0 {
			rows, err = l.Db.QueryContext(ctx, query, opt.Args...)
		} else {
			rows, err = l.Db.QueryContext(ctx, query)
		}
		if err != nil {
			log.Printf("sql query error: %v", err)
			return
		}
		defer rows.Close()
		cols, err := rows.Columns()
		if err != nil {
			log.Printf("sql columns error: %v", err)
			return
		}
		colTypes, err := rows.ColumnTypes()
		if err != nil {
			log.Printf("sql column types error: %v", err)
			return
		}
		for rows.Next() {
			columns := make([]any, len(cols))
			columnPointers := make([]any, len(cols))
			for i := range columns {
				columnPointers[i] = &columns[i]
			}
			if err := rows.Scan(columnPointers...); err != nil {
				log.Printf("sql scan error: %v", err)
				continue
			}
			rec := make(utils.Record)
			for i, colName := range cols {
				var val any
				if b, ok := columns[i].([]byte); ok {
					if b == nil {
						val = nil
					} else {
						dbType := colTypes[i].DatabaseTypeName()
						_, scale, _ := colTypes[i].DecimalSize()
						switch dbType {
						case "INT", "INTEGER", "BIGINT", "TINYINT", "SMALLINT", "MEDIUMINT":
							if num, err := strconv.ParseInt(string(b), 10, 64); err == nil {
								val = num
							} else {
								val = string(b)
							}
						case "NUMERIC":
							if scale > 0 {
								if num, err := strconv.ParseInt(string(b), 10, 64); err == nil {
									val = num
								} else {
									val = string(b)
								}
							} else {
								if num, err := strconv.ParseFloat(string(b), 64); err == nil {
									val = num
								} else {
									val = string(b)
								}
							}
						case "FLOAT", "DOUBLE", "DECIMAL":
							if num, err := strconv.ParseFloat(string(b), 64); err == nil {
								val = num
							} else {
								val = string(b)
							}
						default:
							val = string(b)
						}
					}
				} else {
					val = columns[i]
				}
				rec[colName] = val
			}
			select {
			case <-ctx.Done():
				return
			case out <- rec:
			}
		}
	}(q)
	return out, nil
}

func (l *Adapter) Close() error {
	return l.Db.Close()
}
