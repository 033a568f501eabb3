package handlers

import (
	"fmt"
	"strings"
)

// patch mengumpulkan kolom yang dikirim client untuk partial update.
// Placeholder dinomori sesuai urutan pemanggilan set supaya cocok dengan args.
type patch struct {
	cols []string
	args []interface{}
}

func (p *patch) set(col string, val interface{}) {
	p.args = append(p.args, val)
	p.cols = append(p.cols, fmt.Sprintf("%s = $%d", col, len(p.args)))
}

func (p *patch) empty() bool {
	return len(p.cols) == 0
}

// build menghasilkan statement UPDATE untuk satu baris berdasarkan id.
// updated_at selalu ikut di-refresh.
func (p *patch) build(table string, id int) (string, []interface{}) {
	p.args = append(p.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = $%d",
		table, strings.Join(p.cols, ", "), len(p.args))
	return query, p.args
}
