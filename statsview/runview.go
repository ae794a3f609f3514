// This file is part of Romshift.
//
// Romshift is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romshift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romshift.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"bytes"
	"encoding/json"
	"net/http"
	"text/template"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/statsview/viewer"
)

const runView = "patchrun"

// runViewer charts the patch run totals.
type runViewer struct {
	smgr  *viewer.StatsMgr
	graph *charts.Line
}

func newRunViewer() viewer.Viewer {
	graph := charts.NewLine()
	graph.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Num"}),
		charts.WithTitleOpts(opts.Title{Title: "Patch Run"}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "600px",
			Height: "400px",
			Theme:  string(viewer.DefaultTheme),
		}),
	)
	graph.SetXAxis([]string{})
	graph.AddSeries("Sets", []opts.LineData{}).
		AddSeries("Skipped", []opts.LineData{}).
		AddSeries("Sites", []opts.LineData{})
	graph.AddJSFuncs(syncScript(graph.ChartID, runView))

	return &runViewer{graph: graph}
}

// syncScript is the script that polls the view's route. ChartID is only
// valid after the initialisation options have been set.
func syncScript(id string, route string) string {
	tpl := template.Must(template.New("view").Parse(viewer.DefaultTemplate))

	var b bytes.Buffer
	_ = tpl.Execute(&b, struct {
		Interval  int
		MaxPoints int
		Addr      string
		Route     string
		ViewID    string
	}{
		Interval:  viewer.Interval(),
		MaxPoints: viewer.DefaultMaxPoints,
		Addr:      viewer.LinkAddr(),
		Route:     route,
		ViewID:    id,
	})

	return b.String()
}

func (vr *runViewer) SetStatsMgr(smgr *viewer.StatsMgr) {
	vr.smgr = smgr
}

func (vr *runViewer) Name() string {
	return runView
}

func (vr *runViewer) View() *charts.Line {
	return vr.graph
}

func (vr *runViewer) Serve(w http.ResponseWriter, _ *http.Request) {
	vr.smgr.Tick()

	c := Counters()
	bs, _ := json.Marshal(viewer.Metrics{
		Values: []float64{float64(c.Sets), float64(c.Skipped), float64(c.Sites)},
		Time:   time.Now().Format(viewer.DefaultTimeFormat),
	})
	_, _ = w.Write(bs)
}
