package emulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tcpu/cpu"
)

const bringupOutput = "\n\r************************************************\n\r" +
	"00: Hello, World!\n\r" +
	"I'm an 8-bit TTL computer, now with a stack! :D\n\r" +
	" !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~\n\r" +
	"01\n\r02\n\r03\n\r05\n\r08\n\r0D\n\r15\n\r22\n\r37\n\r59\n\r90\n\rE9\n\r"

func TestBringup(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doLoad(emu, nil, t)

	assert.NoError(emu.SetImage(BringupImage))
	assert.NoError(emu.Reset())
	assert.NoError(emu.SetMaxCycles(10000))
	assert.NoError(emu.Run(context.Background()))

	assert.Equal(bringupOutput, output.String())
	assert.True(emu.Cpu.Halted)
	assert.Nil(emu.Cpu.Fault)
	assert.Equal(uint8(cpu.OP_HALT), emu.Cpu.Ir)
	assert.Equal(1841, emu.Cpu.Ticks)
	assert.Equal(uint8(0x79), emu.Cpu.A)
	assert.Equal(uint8(0x24), emu.Cpu.Pc)
	assert.True(emu.Cpu.Cf)
	assert.False(emu.Cpu.Zf)
	assert.Equal(uint8(cpu.STACK_TOP), emu.Cpu.Stack().Pointer())
	assert.Equal(len(bringupOutput), emu.Tty.Sent())
}
