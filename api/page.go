package api

import (
	"html/template"
	"net/http"

	"github.com/censusviz/censusviz/logger"
)

// Dashboard serves the interactive page: the title block, the filter
// controls, the embedded chart and the preview/summary tables. The controls
// are populated from /api/options so they always reflect the loaded table.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, map[string]interface{}{
		"ChartHeight": h.chartHeight,
	}); err != nil {
		logger.ErrorContext(r.Context(), "dashboard render failed", "error", err)
	}
}

// renderNotice writes the no-data notice page shown instead of a chart.
func renderNotice(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	noticeTmpl.Execute(w, map[string]interface{}{"Message": message})
}

var noticeTmpl = template.Must(template.New("notice").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>censusviz</title></head>
<body style="font-family: sans-serif; background: #fffbe6; margin: 2em;">
<p style="color: #8a6d00; border: 1px solid #e6d590; padding: 1em;">&#9888; {{.Message}}</p>
</body>
</html>
`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>censusviz: income and education in 3D</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; }
#sidebar { width: 280px; padding: 1em; background: #f5f5f5; min-height: 100vh; }
#main { flex: 1; padding: 1em; }
#sidebar h2 { font-size: 1em; }
#sidebar label { display: block; margin-top: 1em; font-weight: bold; font-size: 0.9em; }
#sidebar select, #sidebar input { width: 100%; margin-top: 0.3em; }
#chart-frame { width: 100%; border: none; }
table { border-collapse: collapse; font-size: 0.85em; margin-top: 0.5em; }
th, td { border: 1px solid #ddd; padding: 0.3em 0.6em; text-align: left; }
#warning { display: none; color: #8a6d00; background: #fffbe6; border: 1px solid #e6d590; padding: 0.8em; margin: 0.5em 0; }
</style>
</head>
<body>
<div id="sidebar">
  <h2>3D chart settings</h2>
  <label for="dim">Third dimension (z axis / color)</label>
  <select id="dim"></select>
  <label for="edu-min">education.num range</label>
  <input type="number" id="edu-min">
  <input type="number" id="edu-max">
  <label for="education">Education levels</label>
  <select id="education" multiple size="8"></select>
  <label for="income">Income brackets</label>
  <select id="income" multiple size="2"></select>
  <button id="apply" style="margin-top: 1em; width: 100%;">Apply filters</button>
</div>
<div id="main">
  <h1>Income and education in the adult census, in 3D</h1>
  <p>This dashboard explores the relationship between <b>education level
  (education.num)</b> and <b>income bracket</b> across the adult census
  data. The third axis carries a selectable categorical variable for deeper
  comparison between groups.</p>
  <div id="warning"></div>
  <iframe id="chart-frame" height="{{.ChartHeight}}" src="/chart"></iframe>
  <h2>Filtered data preview</h2>
  <div id="preview"></div>
  <h2>Summary statistics</h2>
  <div id="summary"></div>
</div>
<script>
function query() {
  var p = new URLSearchParams();
  p.set("dim", document.getElementById("dim").value);
  p.set("edu_min", document.getElementById("edu-min").value);
  p.set("edu_max", document.getElementById("edu-max").value);
  selected("education").forEach(function (v) { p.append("education", v); });
  selected("income").forEach(function (v) { p.append("income", v); });
  return p.toString();
}
function selected(id) {
  return Array.from(document.getElementById(id).selectedOptions).map(function (o) { return o.value; });
}
function fill(id, values, selectAll) {
  var el = document.getElementById(id);
  values.forEach(function (v) {
    var o = document.createElement("option");
    o.value = v; o.textContent = v; o.selected = selectAll;
    el.appendChild(o);
  });
}
function renderTable(el, columns, rows) {
  var html = "<table><tr>" + columns.map(function (c) { return "<th>" + c + "</th>"; }).join("") + "</tr>";
  rows.forEach(function (row) {
    html += "<tr>" + columns.map(function (c) {
      var v = row[c];
      return "<td>" + (v === null || v === undefined ? "n/a" : v) + "</td>";
    }).join("") + "</tr>";
  });
  el.innerHTML = html + "</table>";
}
function refresh() {
  var q = query();
  document.getElementById("chart-frame").src = "/chart?" + q;
  fetch("/api/records?" + q).then(function (r) { return r.json(); }).then(function (data) {
    var warning = document.getElementById("warning");
    warning.style.display = data.empty ? "block" : "none";
    warning.textContent = data.message || "";
    var columns = ["age", "workclass", "education", "education.num", "marital.status",
      "occupation", "relationship", "race", "sex", "hours.per.week", "native.country",
      "income", "income_numeric"];
    renderTable(document.getElementById("preview"), columns, data.records || []);
  });
  fetch("/api/summary?" + q).then(function (r) { return r.json(); }).then(function (data) {
    var el = document.getElementById("summary");
    var numericCols = ["column", "count", "mean", "std", "min", "median", "max"];
    var catCols = ["column", "count", "unique", "top", "freq"];
    el.innerHTML = "";
    var num = document.createElement("div");
    renderTable(num, numericCols, data.summary.numeric || []);
    var cat = document.createElement("div");
    renderTable(cat, catCols, data.summary.categorical || []);
    el.appendChild(num);
    el.appendChild(cat);
  });
}
fetch("/api/options").then(function (r) { return r.json(); }).then(function (opts) {
  fill("dim", opts.dimensions, false);
  document.getElementById("edu-min").value = opts.education_num_min;
  document.getElementById("edu-max").value = opts.education_num_max;
  fill("education", opts.education_levels, true);
  fill("income", opts.income_labels, true);
  refresh();
});
document.getElementById("apply").addEventListener("click", refresh);
</script>
</body>
</html>
`))
