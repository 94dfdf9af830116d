package web

import "html/template"

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>AltRadar · {{.Title}}</title>
{{- range .Assets}}
<script src="{{.}}"></script>
{{- end}}
<style>
body { font-family: sans-serif; margin: 24px; color: #222; }
nav a { margin-right: 16px; }
.market-table { border-collapse: collapse; margin: 16px 0; }
.market-table th, .market-table td { border: 1px solid #ddd; padding: 4px 10px; text-align: right; }
.market-table td:first-child, .market-table th:first-child { text-align: left; }
.actions form { display: inline; margin-right: 8px; }
.meta { color: #777; font-size: 0.9em; }
</style>
</head>
<body>
<nav><a href="/dashboard">Market Analysis</a><a href="/saved-dashboard">Saved Market Data</a></nav>
<h1>{{.Title}}</h1>
<div class="actions">
<form method="post" action="{{.Path}}/refresh"><button type="submit">Refresh</button></form>
{{- if eq .Panel "saved"}}
<form method="post" action="{{.Path}}/filter"><button type="submit">Buy candidates</button></form>
<form method="post" action="{{.Path}}/reset"><button type="submit">Show all</button></form>
{{- end}}
</div>
<p class="meta">
{{- if .LoadedAt.IsZero}}not loaded yet{{else}}loaded {{.LoadedAt.Format "2006-01-02 15:04:05"}}{{end}}
{{- if .Filtered}} · showing buy candidates{{end}} · revision {{.Revision}}</p>
{{.TableHTML}}
{{- range .Charts}}
{{.Element}}
{{.Script}}
{{- end}}
<script>
(function () {
  var panel = {{.Panel}}, revision = {{.Revision}};
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.panel === panel && msg.revision > revision) {
      location.reload();
    }
  };
})();
</script>
</body>
</html>
`))
