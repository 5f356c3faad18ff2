package emulator

import (
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/simplelang/config"
	"github.com/ezrec/simplelang/machine"
)

const countTo5 = "LOAD #5 STORE 15 LOAD #0 EQUAL 15 JUMP #6 HALT #0 ADD #1 JUMP #3"

var _ = Describe("Emulator", func() {
	var (
		mockCtrl *gomock.Controller
		obs      *MockObserver
		cfg      *config.Config
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		obs = NewMockObserver(mockCtrl)
		cfg = config.New(machine.Text(countTo5))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start from the configured state", func() {
		cfg.MemorySize = 4
		cfg.Memory = map[int]int{1: 9}
		cfg.Accumulator = 3

		emu, err := NewEmulator(cfg)
		Expect(err).ToNot(HaveOccurred())

		Expect(emu.State()).To(Equal(machine.State{
			Memory:      []int{0, 9, 0, 0},
			Accumulator: 3,
		}))
		Expect(emu.Halted()).To(BeFalse())
		Expect(emu.Ticks()).To(Equal(0))
	})

	It("should reject a bad program", func() {
		emu, err := NewEmulator(config.New(machine.Text("FOO 1")))
		Expect(emu).To(BeNil())
		Expect(err).To(MatchError(machine.ErrInstructionUnknown))
	})

	It("should reject bad initial memory", func() {
		cfg.Memory = map[int]int{16: 1}

		_, err := NewEmulator(cfg)
		Expect(err).To(MatchError(config.ErrMemoryIndex))
	})

	It("should run to halt", func() {
		emu, err := NewEmulator(cfg)
		Expect(err).ToNot(HaveOccurred())

		gomock.InOrder(
			obs.EXPECT().Step(0, "PC=000 ACC=00000 LOAD #5"),
			obs.EXPECT().Step(1, "PC=001 ACC=00005 STORE 15"),
			obs.EXPECT().Step(gomock.Any(), gomock.Any()).Times(22),
			obs.EXPECT().Step(24, "PC=005 ACC=00005 HALT "),
		)

		steps := emu.Run(obs)

		Expect(steps).To(Equal(25))
		Expect(emu.Ticks()).To(Equal(25))
		Expect(emu.Halted()).To(BeTrue())
		Expect(emu.Accumulator()).To(Equal(5))
		Expect(emu.Memory()[15]).To(Equal(5))
	})

	It("should report the instruction limit once", func() {
		cfg.Source = machine.Text("ADD #1 JUMP #0")
		cfg.MaxSteps = 5

		emu, err := NewEmulator(cfg)
		Expect(err).ToNot(HaveOccurred())

		obs.EXPECT().Step(gomock.Any(), gomock.Any()).Times(5)
		obs.EXPECT().Fault(gomock.Any()).Do(func(err error) {
			Expect(err).To(MatchError(machine.ErrInstructionLimit))

			var rt *ErrRuntime
			Expect(errors.As(err, &rt)).To(BeFalse())
		})

		Expect(emu.Run(obs)).To(Equal(5))
		Expect(emu.Halted()).To(BeFalse())
		Expect(emu.Accumulator()).To(Equal(3))
	})

	It("should wrap a step failure", func() {
		cfg.Source = machine.Text("LOAD #1 STORE #2 ADD #1")

		emu, err := NewEmulator(cfg)
		Expect(err).ToNot(HaveOccurred())

		obs.EXPECT().Step(0, "PC=000 ACC=00000 LOAD #1")
		obs.EXPECT().Fault(gomock.Any()).Do(func(err error) {
			Expect(err).To(MatchError(machine.ErrOperand))

			var rt *ErrRuntime
			Expect(errors.As(err, &rt)).To(BeTrue())
			Expect(rt.Step).To(Equal(1))
		})

		Expect(emu.Run(obs)).To(Equal(1))
		Expect(emu.Halted()).To(BeTrue())
	})

	It("should tick until done", func() {
		cfg.Source = machine.Text("LOAD #2 ADD #3 STORE 0 HALT")

		emu, err := NewEmulator(cfg)
		Expect(err).ToNot(HaveOccurred())

		var traces []string
		for {
			done, trace, err := emu.Tick()
			Expect(err).ToNot(HaveOccurred())
			if trace != "" {
				traces = append(traces, trace)
			}
			if done {
				break
			}
		}

		Expect(traces).To(Equal([]string{
			"PC=000 ACC=00000 LOAD #2",
			"PC=001 ACC=00002 ADD #3",
			"PC=002 ACC=00005 STORE 0",
			"PC=003 ACC=00005 HALT ",
		}))
		Expect(emu.Ticks()).To(Equal(4))
		Expect(emu.Memory()[0]).To(Equal(5))

		done, trace, err := emu.Tick()
		Expect(done).To(BeTrue())
		Expect(trace).To(BeEmpty())
		Expect(err).ToNot(HaveOccurred())
	})

	It("should wrap a tick failure", func() {
		cfg.Source = machine.Text("JUMP 0")

		emu, err := NewEmulator(cfg)
		Expect(err).ToNot(HaveOccurred())

		done, _, err := emu.Tick()
		Expect(done).To(BeTrue())
		Expect(err).To(MatchError(machine.ErrOperand))

		var rt *ErrRuntime
		Expect(errors.As(err, &rt)).To(BeTrue())
		Expect(rt.Step).To(Equal(0))
	})

	It("should reset to the initial state", func() {
		cfg.Memory = map[int]int{2: 4}

		emu, err := NewEmulator(cfg)
		Expect(err).ToNot(HaveOccurred())

		obs.EXPECT().Step(gomock.Any(), gomock.Any()).AnyTimes()
		emu.Run(obs)
		Expect(emu.Halted()).To(BeTrue())

		Expect(emu.Reset()).To(Succeed())
		Expect(emu.Halted()).To(BeFalse())
		Expect(emu.Ticks()).To(Equal(0))
		Expect(emu.ProgramCounter()).To(Equal(0))
		Expect(emu.Memory()[2]).To(Equal(4))
		Expect(emu.Memory()[15]).To(Equal(0))
	})
})
