package view

import (
	"html/template"
	"strings"
)

// DashboardData is the view-model for the authenticated screen.
type DashboardData struct {
	User      string
	Products  []string
	Orders    template.HTML
	GatewayUp bool
	Notice    string
}

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Order Desk</title>
<style>
  :root { --bg: #111827; --panel: #1f2937; --text: #f9fafb; --text-gray: #9ca3af; --accent: #6366f1; }
  body { margin: 0; font-family: system-ui, sans-serif; background: var(--bg); color: var(--text); }
  .panel { max-width: 640px; margin: 3rem auto; padding: 1.5rem; background: var(--panel); border-radius: 8px; }
  input, select, button { font: inherit; padding: 0.5rem; border-radius: 4px; border: 1px solid #374151; }
  input, select { background: var(--bg); color: var(--text); }
  button { background: var(--accent); color: white; border: none; cursor: pointer; }
  .notice { padding: 0.5rem 0.75rem; border-radius: 4px; background: #374151; margin-bottom: 1rem; }
  .empty { color: var(--text-gray); text-align: center; }
  .order-item { display: flex; justify-content: space-between; padding: 0.75rem 0; border-bottom: 1px solid #374151; }
  .order-id { font-weight: 600; }
  .order-detail { font-size: 0.875rem; color: var(--text-gray); }
  .order-right { text-align: right; }
  .order-price { font-weight: 600; }
  .status-badge { font-size: 0.75rem; padding: 0.125rem 0.5rem; border-radius: 999px; }
  .status-success { background: #064e3b; color: #6ee7b7; }
  .status-pending { background: #78350f; color: #fcd34d; }
  .gateway { font-size: 0.75rem; color: var(--text-gray); }
  .topbar { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1rem; }
</style>
</head>
<body>
{{block "content" .}}{{end}}
</body>
</html>`

var loginTmpl = template.Must(template.Must(template.New("login").Parse(pageShell)).Parse(`{{define "content"}}
<div class="panel">
  <h1>Order Desk</h1>
  {{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}
  <form method="post" action="/login">
    <label for="username">Username</label>
    <input id="username" name="username" required>
    <button type="submit">Log in</button>
  </form>
</div>
{{end}}`))

var dashboardTmpl = template.Must(template.Must(template.New("dashboard").Parse(pageShell)).Parse(`{{define "content"}}
<div class="panel">
  <div class="topbar">
    <div>
      <h1>Order Desk</h1>
      <span class="gateway">gateway {{if .GatewayUp}}up{{else}}unreachable{{end}}</span>
    </div>
    <div>
      <span>{{if .User}}{{.User}}{{else}}User{{end}}</span>
      <form method="post" action="/logout" style="display:inline">
        <button type="submit">Log out</button>
      </form>
    </div>
  </div>
  {{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}
  <form method="post" action="/orders">
    <select name="product">
      {{range .Products}}<option value="{{.}}">{{.}}</option>{{end}}
    </select>
    <input name="quantity" type="number" value="1" min="1">
    <button type="submit">Place order</button>
  </form>
  <h2>Your orders</h2>
  <div id="orders-list">
{{.Orders}}
  </div>
</div>
{{end}}`))

type loginData struct {
	Notice string
}

// LoginPage renders the unauthenticated screen, optionally with a
// notice banner.
func LoginPage(notice string) string {
	var b strings.Builder
	if err := loginTmpl.Execute(&b, loginData{Notice: notice}); err != nil {
		return ""
	}
	return b.String()
}

// DashboardPage renders the authenticated screen.
func DashboardPage(data DashboardData) string {
	var b strings.Builder
	if err := dashboardTmpl.Execute(&b, data); err != nil {
		return ""
	}
	return b.String()
}
