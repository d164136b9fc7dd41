// This file is part of Hode.
//
// Hode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hode.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hode-port/hode/logger"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the default address of the stats server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Server is a running stats server.
type Server struct {
	mgr  *statsview.ViewManager
	addr string
	once sync.Once
}

// Launch a new goroutine running the statsview. The address of the server is
// written to output.
func Launch(output io.Writer, addr string) *Server {
	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithInterval(int(time.Second/time.Millisecond)))

	srv := &Server{
		mgr:  statsview.New(),
		addr: addr,
	}

	go func() {
		srv.mgr.Start()
	}()

	logger.Logf(logger.Allow, "statsview", "launched on %s", addr)
	if output != nil {
		output.Write([]byte(fmt.Sprintf("stats server available at %s\n", srv.URL())))
	}

	return srv
}

// URL returns the URL of the statsview page.
func (srv *Server) URL() string {
	return fmt.Sprintf("http://%s%s", srv.addr, url)
}

// Stop the server.
func (srv *Server) Stop() {
	srv.once.Do(func() {
		srv.mgr.Stop()
	})
}
