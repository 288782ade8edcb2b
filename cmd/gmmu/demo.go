package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/gmmu/datarecording"
	"github.com/sarchlab/gmmu/monitoring"
	"github.com/sarchlab/gmmu/tracing"
	"github.com/sarchlab/gmmu/vm"
	"github.com/sarchlab/gmmu/vm/flat"
	"github.com/sarchlab/gmmu/vm/iommu"
	"github.com/sarchlab/gmmu/vm/mmu"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a full MMU lifecycle against a software backend.",
	Run: func(cmd *cobra.Command, _ []string) {
		backendName, _ := cmd.Flags().GetString("backend")
		record, _ := cmd.Flags().GetBool("record")
		monitor, _ := cmd.Flags().GetBool("monitor")
		open, _ := cmd.Flags().GetBool("open")
		hold, _ := cmd.Flags().GetBool("hold")

		runDemo(backendName, record, monitor, open, hold)
	},
}

func init() {
	demoCmd.Flags().String("backend", "iommu",
		"backend to drive: iommu or flat")
	demoCmd.Flags().Bool("record", false,
		"record controller events into a SQLite database")
	demoCmd.Flags().Bool("monitor", false,
		"serve controller state over HTTP")
	demoCmd.Flags().Bool("open", false,
		"open the monitoring server in a browser")
	demoCmd.Flags().Bool("hold", false,
		"keep the process alive after the demo for monitoring")

	rootCmd.AddCommand(demoCmd)
}

// simDevice stands in for the GPU during demos: register writes are
// stored and idle waits return immediately.
type simDevice struct {
	regs map[uint32]uint32
}

func newSimDevice() *simDevice {
	return &simDevice{regs: make(map[uint32]uint32)}
}

func (d *simDevice) Idle(time.Duration) {}

func (d *simDevice) RegWrite(reg, value uint32) {
	d.regs[reg] = value
}

type demoBackend interface {
	mmu.Backend
	AttachedContexts(*vm.AddressSpace) []string
}

func buildBackend(name string) (demoBackend, mmu.Resolver) {
	switch name {
	case "iommu":
		devices := []*iommu.ContextDevice{
			iommu.NewContextDevice("gfx3d_user"),
			iommu.NewContextDevice("gfx3d_priv"),
			iommu.NewContextDevice("gfx2d_user"),
			iommu.NewContextDevice("gfx2d_priv"),
		}
		return iommu.NewBackend(), iommu.NewResolver(devices...)
	case "flat":
		return flat.NewBackend(), flat.Resolver{}
	default:
		log.Fatalf("unknown backend %q (want iommu or flat)", name)
		return nil, nil
	}
}

func demoDescriptor(backendName string, gpuAddr, size uint64) *vm.MemoryDescriptor {
	desc := &vm.MemoryDescriptor{GPUAddr: gpuAddr, Size: size}

	// Flat translation requires identity placement; the IOMMU demo
	// scatters the buffer to show real translation.
	pAddr := gpuAddr
	if backendName == "iommu" {
		pAddr = gpuAddr + 0x10000000
	}
	for off := uint64(0); off < size; off += vm.PageSize {
		desc.SG = append(desc.SG, vm.ScatterSegment{
			PAddr: pAddr + off,
			Size:  vm.PageSize,
		})
	}

	return desc
}

func runDemo(backendName string, record, monitor, open, hold bool) {
	backend, resolver := buildBackend(backendName)

	c := mmu.MakeBuilder().
		WithBackend(backend).
		WithResolver(resolver).
		WithDevice(newSimDevice()).
		Build("GPU.MMU")

	c.AcceptHook(mmu.NewLogHook(log.New(os.Stderr, "", log.Lmicroseconds)))

	if record {
		path := os.Getenv("GMMU_RECORD_PATH")
		rec := datarecording.New(path)
		c.AcceptHook(tracing.NewRecorder(rec))
		defer rec.Flush()
	}

	if monitor {
		m := monitoring.NewMonitor()
		if portStr := os.Getenv("GMMU_MONITOR_PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				log.Fatalf("bad GMMU_MONITOR_PORT %q: %v", portStr, err)
			}
			m.WithPortNumber(port)
		}
		m.RegisterController(c)
		port := m.StartServer()

		if open {
			url := fmt.Sprintf("http://localhost:%d/api/state/GPU.MMU", port)
			if err := browser.OpenURL(url); err != nil {
				log.Printf("could not open browser: %v", err)
			}
		}
	}

	table := mmu.DescriptorTable{
		{Contexts: []mmu.ContextDescriptor{
			{Name: "gfx3d_user", Kind: mmu.KindUser},
			{Name: "gfx3d_priv", Kind: mmu.KindPrivileged},
		}},
		{Contexts: []mmu.ContextDescriptor{
			{Name: "gfx2d_user", Kind: mmu.KindUser},
			{Name: "gfx2d_priv", Kind: mmu.KindPrivileged},
		}},
	}

	if err := c.Init(table); err != nil {
		log.Fatalf("init: %v", err)
	}
	if err := c.Start(); err != nil {
		log.Fatalf("start: %v", err)
	}

	defaultAS := c.ActiveAddressSpace()
	ring := demoDescriptor(backendName, 0x0010_0000, 4*vm.PageSize)
	if err := c.Map(defaultAS, ring, vm.ProtRead|vm.ProtWrite); err != nil {
		log.Fatalf("map ring buffer: %v", err)
	}

	second, err := backend.CreateAddressSpace()
	if err != nil {
		log.Fatalf("create second address space: %v", err)
	}

	c.SetState(second)
	texture := demoDescriptor(backendName, 0x0200_0000, 16*vm.PageSize)
	if err := c.Map(second, texture, vm.ProtRead); err != nil {
		log.Fatalf("map texture: %v", err)
	}
	fmt.Printf("active space %s has %d contexts attached\n",
		c.CurrentAddressSpaceToken(), len(backend.AttachedContexts(second)))

	c.SetState(defaultAS)
	if err := c.Unmap(second, texture); err != nil {
		log.Fatalf("unmap texture: %v", err)
	}
	if err := c.Unmap(defaultAS, ring); err != nil {
		log.Fatalf("unmap ring buffer: %v", err)
	}

	if hold {
		fmt.Println("holding for monitoring; interrupt to exit")
		select {}
	}

	if err := c.Stop(); err != nil {
		log.Fatalf("stop: %v", err)
	}
	c.Close()

	if second.Release() {
		backend.DestroyAddressSpace(second)
	}
}
