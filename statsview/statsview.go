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
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/statsview/statics"
	"github.com/go-echarts/statsview/viewer"
	"github.com/rs/cors"
)

// Address of the stats server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Launch a new goroutine running the stats server. The page shows the patch
// run totals alongside the runtime stats.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))

	srv := &http.Server{
		Addr:           Address,
		Handler:        handler(),
		ReadTimeout:    time.Minute,
		WriteTimeout:   time.Minute,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		_ = srv.ListenAndServe()
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

func handler() http.Handler {
	page := components.NewPage()
	page.PageTitle = "Romshift"
	page.AssetsHost = fmt.Sprintf("http://%s%s/statics/", viewer.LinkAddr(), url)
	page.Assets.JSAssets.Add("jquery.min.js")

	views := []viewer.Viewer{
		newRunViewer(),
		viewer.NewGoroutinesViewer(),
		viewer.NewHeapViewer(),
		viewer.NewGCNumViewer(),
	}

	smgr := viewer.NewStatsMgr(context.Background())
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	for _, v := range views {
		v.SetStatsMgr(smgr)
		page.AddCharts(v.View())
		mux.HandleFunc(url+"/view/"+v.Name(), v.Serve)
	}

	mux.HandleFunc(url, func(w http.ResponseWriter, _ *http.Request) {
		_ = page.Render(w)
	})

	assets := map[string]string{
		"echarts.min.js":     statics.EchartJS,
		"jquery.min.js":      statics.JqueryJS,
		"themes/macarons.js": statics.MacaronsJS,
		"themes/westeros.js": statics.WesterosJS,
	}
	for name, js := range assets {
		js := js
		mux.HandleFunc(url+"/statics/"+name, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(js))
		})
	}

	return cors.AllowAll().Handler(mux)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
