// Package monitoring turns a set of live MMU controllers into an HTTP
// server for external inspection: lifecycle state, per-context attachment,
// process resources, and CPU profiles.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/gmmu/vm/mmu"
)

// Monitor exposes registered MMU controllers over HTTP.
type Monitor struct {
	portNumber  int
	controllers []*mmu.Controller
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterController registers a controller to be monitored.
func (m *Monitor) RegisterController(c *mmu.Controller) {
	m.controllers = append(m.controllers, c)
}

// StartServer starts the monitor as a web server. It returns the port the
// server listens on.
func (m *Monitor) StartServer() int {
	r := mux.NewRouter()
	r.HandleFunc("/api/list_controllers", m.listControllers)
	r.HandleFunc("/api/controller/{name}", m.listControllerDetails)
	r.HandleFunc("/api/field/{json}", m.listFieldValue)
	r.HandleFunc("/api/contexts/{name}", m.listContexts)
	r.HandleFunc("/api/state/{name}", m.listState)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	port := listener.Addr().(*net.TCPAddr).Port
	fmt.Fprintf(os.Stderr,
		"Monitoring MMU controllers with http://localhost:%d\n", port)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()

	return port
}

func (m *Monitor) listControllers(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, c := range m.controllers {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", c.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listControllerDetails(
	w http.ResponseWriter,
	r *http.Request,
) {
	name := mux.Vars(r)["name"]

	c := m.findControllerOr404(w, name)
	if c == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(c)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type fieldReq struct {
	CtrlName  string `json:"ctrl_name,omitempty"`
	FieldName string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	jsonString := mux.Vars(r)["json"]
	req := fieldReq{}

	err := json.Unmarshal([]byte(jsonString), &req)
	if err != nil {
		dieOnErr(err)
	}

	fields := strings.Split(req.FieldName, ".")

	c := m.findControllerOr404(w, req.CtrlName)
	if c == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(c)
	serializer.SetMaxDepth(1)

	err = serializer.SetEntryPoint(fields)
	dieOnErr(err)

	err = serializer.Serialize(w)
	dieOnErr(err)
}

type contextRsp struct {
	Unit     int    `json:"unit"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Attached bool   `json:"attached"`
}

func (m *Monitor) listContexts(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	c := m.findControllerOr404(w, name)
	if c == nil {
		return
	}

	var rsp []contextRsp
	for i, u := range c.Units() {
		for _, ctx := range u.Contexts() {
			rsp = append(rsp, contextRsp{
				Unit:     i,
				Name:     ctx.Name(),
				Kind:     ctx.Kind().String(),
				Attached: ctx.Attached(),
			})
		}
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type stateRsp struct {
	Started     bool   `json:"started"`
	ActiveSpace string `json:"active_space"`
}

func (m *Monitor) listState(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	c := m.findControllerOr404(w, name)
	if c == nil {
		return
	}

	rsp := stateRsp{Started: c.Started()}
	if as := c.ActiveAddressSpace(); as != nil {
		rsp.ActiveSpace = string(as.Token())
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) findControllerOr404(
	w http.ResponseWriter,
	name string,
) *mmu.Controller {
	var ctrl *mmu.Controller
	for _, c := range m.controllers {
		if c.Name() == name {
			ctrl = c
		}
	}

	if ctrl == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Controller not found"))
		dieOnErr(err)
	}

	return ctrl
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
