package view

import (
	"html/template"
	"strings"

	"orderdesk/internal/model"
)

// badgeClass picks the status badge styling: only freshly created
// orders get the success style, everything else shows as pending work.
func badgeClass(status string) string {
	if status == model.StatusCreated {
		return "status-success"
	}
	return "status-pending"
}

var ordersTmpl = template.Must(template.New("orders").Funcs(template.FuncMap{
	"badgeClass": badgeClass,
}).Parse(`{{if not . -}}
<p class="empty">No orders yet.</p>
{{- else}}{{range . -}}
<div class="order-item">
  <div>
    <div class="order-id">Order #{{.ID}}</div>
    <div class="order-detail">{{.ProductID}} (x{{.Quantity}})</div>
  </div>
  <div class="order-right">
    <div class="order-price">${{printf "%.2f" .Price}}</div>
    <span class="status-badge {{badgeClass .Status}}">{{.Status}}</span>
  </div>
</div>
{{end}}{{- end}}`))

// OrdersHTML renders the order list as a markup fragment: the
// placeholder for an empty list, otherwise one row per order in the
// order the backend returned them.
func OrdersHTML(orders []model.Order) template.HTML {
	var b strings.Builder
	if err := ordersTmpl.Execute(&b, orders); err != nil {
		// The template only touches plain fields; execution cannot fail
		// on valid orders.
		return template.HTML("")
	}
	return template.HTML(b.String())
}
