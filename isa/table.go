package isa

// GroupTable is one instruction class with its descriptors in declaration
// order.
type GroupTable struct {
	Group   Group
	Entries []Descriptor
}

// Groups is the static instruction-variant table. Declaration order is the
// stable iteration order for ByGroup and summaries.
var Groups = []GroupTable{
	{
		Group: GROUP_DATAPROC_REG,
		Entries: []Descriptor{
			{
				Name: "ADD", Base: 0x0B000000, Mask: 0x7FE00000,
				Form: "register",
				Desc: "ADD (register): Rd = Rn + Rm [+ optional shift]",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5},
					{"imm6", 10, 6}, {"shift", 22, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "ADDS", Base: 0x2B000000, Mask: 0x7FE00000,
				Form: "register",
				Desc: "ADDS (register, set flags): Rd = Rn + Rm, update PSTATE",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5},
					{"imm6", 10, 6}, {"shift", 22, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "SUB", Base: 0x4B000000, Mask: 0x7FE00000,
				Form: "register",
				Desc: "SUB (register): Rd = Rn - Rm [+ optional shift]",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5},
					{"imm6", 10, 6}, {"shift", 22, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "SUBS", Base: 0x6B000000, Mask: 0x7FE00000,
				Form: "register",
				Desc: "SUBS (register, set flags): Rd = Rn - Rm, update PSTATE",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5},
					{"imm6", 10, 6}, {"shift", 22, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "AND", Base: 0x0A000000, Mask: 0x7FE00000,
				Form: "register",
				Desc: "AND (register): Rd = Rn & Rm",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5},
					{"imm6", 10, 6}, {"shift", 22, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "ORR", Base: 0x2A000000, Mask: 0x7FE00000,
				Form: "register",
				Desc: "ORR (register): Rd = Rn | Rm",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5},
					{"imm6", 10, 6}, {"shift", 22, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "EOR", Base: 0x4A000000, Mask: 0x7FE00000,
				Form: "register",
				Desc: "EOR (register): Rd = Rn ^ Rm",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5},
					{"imm6", 10, 6}, {"shift", 22, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "ANDS", Base: 0x6A000000, Mask: 0x7FE00000,
				Form: "register",
				Desc: "ANDS (register, set flags): Rd = Rn & Rm, update PSTATE",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5},
					{"imm6", 10, 6}, {"shift", 22, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "LSL", Base: 0x1AC02000, Mask: 0x7FE0FC00,
				Form: "register",
				Desc: "LSL (register): Rd = Rn << Rm",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5}, {"sf", 31, 1},
				},
			},
			{
				Name: "LSR", Base: 0x1AC02400, Mask: 0x7FE0FC00,
				Form: "register",
				Desc: "LSR (register): Rd = Rn >> Rm",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5}, {"sf", 31, 1},
				},
			},
			{
				Name: "ASR", Base: 0x1AC02800, Mask: 0x7FE0FC00,
				Form: "register",
				Desc: "ASR (register): Rd = Rn >> Rm (arithmetic)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5}, {"sf", 31, 1},
				},
			},
			{
				Name: "ROR", Base: 0x1AC02C00, Mask: 0x7FE0FC00,
				Form: "register",
				Desc: "ROR (register): Rd = ROR(Rn, Rm)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"Rm", 16, 5}, {"sf", 31, 1},
				},
			},
		},
	},
	{
		Group: GROUP_DATAPROC_IMM,
		Entries: []Descriptor{
			{
				Name: "ADDI", Base: 0x11000000, Mask: 0x7F800000,
				Form: "immediate",
				Desc: "ADD (immediate): Rd = Rn + imm12",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"imm12", 10, 12},
					{"shift", 22, 1}, {"sf", 31, 1},
				},
			},
			{
				Name: "SUBI", Base: 0x51000000, Mask: 0x7F800000,
				Form: "immediate",
				Desc: "SUB (immediate): Rd = Rn - imm12",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"imm12", 10, 12},
					{"shift", 22, 1}, {"sf", 31, 1},
				},
			},
			{
				Name: "ANDI", Base: 0x12000000, Mask: 0x7F800000,
				Form: "immediate_logical",
				Desc: "AND (immediate): Rd = Rn & imm (bitmask immediate)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"immr", 16, 6},
					{"imms", 10, 6}, {"N", 22, 1}, {"sf", 31, 1},
				},
			},
			{
				Name: "ORRI", Base: 0x32000000, Mask: 0x7F800000,
				Form: "immediate_logical",
				Desc: "ORR (immediate): Rd = Rn | imm (bitmask immediate)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"immr", 16, 6},
					{"imms", 10, 6}, {"N", 22, 1}, {"sf", 31, 1},
				},
			},
			{
				Name: "EORI", Base: 0x52000000, Mask: 0x7F800000,
				Form: "immediate_logical",
				Desc: "EOR (immediate): Rd = Rn ^ imm (bitmask immediate)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5}, {"immr", 16, 6},
					{"imms", 10, 6}, {"N", 22, 1}, {"sf", 31, 1},
				},
			},
			{
				Name: "MOVZ", Base: 0x52800000, Mask: 0x7F800000,
				Form: "immediate_wide",
				Desc: "MOVZ: Rd = imm16 << (hw*16), zero elsewhere",
				Fields: []Field{
					{"Rd", 0, 5}, {"imm16", 5, 16}, {"hw", 21, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "MOVK", Base: 0x72800000, Mask: 0x7F800000,
				Form: "immediate_wide",
				Desc: "MOVK: Rd = Rd with imm16 << (hw*16) inserted",
				Fields: []Field{
					{"Rd", 0, 5}, {"imm16", 5, 16}, {"hw", 21, 2}, {"sf", 31, 1},
				},
			},
			{
				Name: "ADRP", Base: 0x90000000, Mask: 0x9F000000,
				Form: "pc_rel",
				Desc: "ADRP: Rd = PC page base + sign_extend(immhi:immlo:Zeros(12))",
				Fields: []Field{
					{"Rd", 0, 5}, {"immlo", 29, 2}, {"immhi", 5, 19},
				},
			},
		},
	},
	{
		Group: GROUP_LOADSTORE,
		Entries: []Descriptor{
			{
				Name: "LDR", Base: 0xB9400000, Mask: 0xFFC00000,
				Form: "loadstore_imm_unsigned",
				Desc: "LDR (unsigned offset): Rt = [Rn + imm12<<scale]",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"imm12", 10, 12},
					{"size", 30, 2},
				},
			},
			{
				Name: "STR", Base: 0xB9000000, Mask: 0xFFC00000,
				Form: "loadstore_imm_unsigned",
				Desc: "STR (unsigned offset): [Rn + imm12<<scale] = Rt",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"imm12", 10, 12},
					{"size", 30, 2},
				},
			},
			{
				Name: "LDRB", Base: 0x39400000, Mask: 0xFFC00000,
				Form: "loadstore_imm_unsigned",
				Desc: "LDRB: Load byte (zero extended)",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"imm12", 10, 12},
				},
			},
			{
				Name: "STRB", Base: 0x39000000, Mask: 0xFFC00000,
				Form: "loadstore_imm_unsigned",
				Desc: "STRB: Store byte",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"imm12", 10, 12},
				},
			},
			{
				Name: "LDRH", Base: 0x79400000, Mask: 0xFFC00000,
				Form: "loadstore_imm_unsigned",
				Desc: "LDRH: Load halfword (zero extended)",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"imm12", 10, 12},
				},
			},
			{
				Name: "STRH", Base: 0x79000000, Mask: 0xFFC00000,
				Form: "loadstore_imm_unsigned",
				Desc: "STRH: Store halfword",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"imm12", 10, 12},
				},
			},
			{
				Name: "LDP", Base: 0xA9400000, Mask: 0x7F800000,
				Form: "loadstore_pair_offset",
				Desc: "LDP: Load pair (Rt,Rt2) from [Rn + imm7<<scale]",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"Rt2", 10, 5},
					{"imm7", 15, 7}, {"L", 22, 1}, {"V", 26, 1},
				},
			},
			{
				Name: "STP", Base: 0xA9000000, Mask: 0x7F800000,
				Form: "loadstore_pair_offset",
				Desc: "STP: Store pair (Rt,Rt2) to [Rn + imm7<<scale]",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"Rt2", 10, 5},
					{"imm7", 15, 7}, {"L", 22, 1}, {"V", 26, 1},
				},
			},
			{
				Name: "LDUR", Base: 0xB8400000, Mask: 0xFFE00C00,
				Form: "loadstore_imm_unscaled",
				Desc: "LDUR: Load with unscaled offset",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"imm9", 12, 9},
					{"size", 30, 2},
				},
			},
			{
				Name: "STUR", Base: 0xB8000000, Mask: 0xFFE00C00,
				Form: "loadstore_imm_unscaled",
				Desc: "STUR: Store with unscaled offset",
				Fields: []Field{
					{"Rt", 0, 5}, {"Rn", 5, 5}, {"imm9", 12, 9},
					{"size", 30, 2},
				},
			},
		},
	},
	{
		Group: GROUP_BRANCH,
		Entries: []Descriptor{
			{
				Name: "B", Base: 0x14000000, Mask: 0xFC000000,
				Form: "branch_imm",
				Desc: "B: Unconditional branch (PC-relative)",
				Fields: []Field{
					{"imm26", 0, 26},
				},
			},
			{
				Name: "BL", Base: 0x94000000, Mask: 0xFC000000,
				Form: "branch_imm",
				Desc: "BL: Branch with link (call)",
				Fields: []Field{
					{"imm26", 0, 26},
				},
			},
			{
				Name: "B.COND", Base: 0x54000000, Mask: 0xFF000010,
				Form: "branch_cond",
				Desc: "B.cond: conditional branch to signed imm19 if cond holds",
				Fields: []Field{
					{"cond", 0, 4}, {"imm19", 5, 19},
				},
			},
			{
				Name: "BR", Base: 0xD61F0000, Mask: 0xFFFFFC1F,
				Form: "branch_reg",
				Desc: "BR: Branch to register",
				Fields: []Field{
					{"Rn", 5, 5},
				},
			},
			{
				Name: "BLR", Base: 0xD63F0000, Mask: 0xFFFFFC1F,
				Form: "branch_reg",
				Desc: "BLR: Branch with link to register",
				Fields: []Field{
					{"Rn", 5, 5},
				},
			},
			{
				Name: "RET", Base: 0xD65F0000, Mask: 0xFFFFFC1F,
				Form: "branch_reg",
				Desc: "RET: Return from subroutine",
				Fields: []Field{
					{"Rn", 5, 5},
				},
			},
			{
				Name: "CBZ", Base: 0x34000000, Mask: 0x7F000000,
				Form: "cmp_branch",
				Desc: "CBZ: if Rt == 0 then branch (PC-relative imm19)",
				Fields: []Field{
					{"Rt", 0, 5}, {"imm19", 5, 19}, {"sf", 31, 1},
				},
			},
			{
				Name: "CBNZ", Base: 0x35000000, Mask: 0x7F000000,
				Form: "cmp_branch",
				Desc: "CBNZ: if Rt != 0 then branch",
				Fields: []Field{
					{"Rt", 0, 5}, {"imm19", 5, 19}, {"sf", 31, 1},
				},
			},
		},
	},
	{
		Group: GROUP_SYSTEM,
		Entries: []Descriptor{
			{
				Name: "NOP", Base: 0xD503201F, Mask: 0xFFFFFFFF,
				Form:   "hint",
				Desc:   "NOP: architectural no-op / hint",
				Fields: []Field{},
			},
			{
				Name: "SVC", Base: 0xD4000001, Mask: 0xFFE0001F,
				Form: "exception",
				Desc: "SVC #imm16: supervisor call (trap into kernel)",
				Fields: []Field{
					{"imm16", 5, 16},
				},
			},
			{
				Name: "MRS", Base: 0xD5300000, Mask: 0xFFF00000,
				Form: "system",
				Desc: "MRS: Move system register to general-purpose",
				Fields: []Field{
					{"Rt", 0, 5}, {"op1", 16, 3}, {"CRn", 12, 4},
					{"CRm", 8, 4}, {"op2", 5, 3},
				},
			},
			{
				Name: "MSR", Base: 0xD5100000, Mask: 0xFFF00000,
				Form: "system",
				Desc: "MSR: Move general-purpose to system register or PSTATE field",
				Fields: []Field{
					{"Rt", 0, 5}, {"op1", 16, 3}, {"CRn", 12, 4},
					{"CRm", 8, 4}, {"op2", 5, 3},
				},
			},
		},
	},
	{
		Group: GROUP_PAC,
		Entries: []Descriptor{
			{
				Name: "PACIA", Base: 0xDAC10000, Mask: 0xFFFFFC00,
				Form: "pac",
				Desc: "PACIA: Pointer Authentication Code for Instruction Address (A key)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5},
				},
			},
			{
				Name: "PACIB", Base: 0xDAC10400, Mask: 0xFFFFFC00,
				Form: "pac",
				Desc: "PACIB: Pointer Authentication Code for Instruction Address (B key)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5},
				},
			},
			{
				Name: "AUTIA", Base: 0xDAC11000, Mask: 0xFFFFFC00,
				Form: "pac",
				Desc: "AUTIA: Authenticate Instruction Address (A key)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5},
				},
			},
			{
				Name: "AUTIB", Base: 0xDAC11400, Mask: 0xFFFFFC00,
				Form: "pac",
				Desc: "AUTIB: Authenticate Instruction Address (B key)",
				Fields: []Field{
					{"Rd", 0, 5}, {"Rn", 5, 5},
				},
			},
		},
	},
	{
		Group: GROUP_MTE,
		Entries: []Descriptor{
			{
				Name: "LDG", Base: 0xD9600000, Mask: 0xFFE00C00,
				Form: "mte_load",
				Desc: "LDG: Load Allocation Tag from [Rn + imm9]",
				Fields: []Field{
					{"Xt", 0, 5}, {"Rn", 5, 5}, {"imm9", 12, 9},
				},
			},
			{
				Name: "STG", Base: 0xD9200800, Mask: 0xFFE00C00,
				Form: "mte_store",
				Desc: "STG: Store Allocation Tag to [Rn + imm9]",
				Fields: []Field{
					{"Xt", 0, 5}, {"Rn", 5, 5}, {"imm9", 12, 9},
				},
			},
			{
				Name: "STZG", Base: 0xD9600800, Mask: 0xFFE00C00,
				Form: "mte_store",
				Desc: "STZG: Store Allocation Tag and Zero data granule at [Rn + imm9]",
				Fields: []Field{
					{"Xt", 0, 5}, {"Rn", 5, 5}, {"imm9", 12, 9},
				},
			},
		},
	},
}

// Aliases is the static alias table. Caller-supplied locks take precedence
// over the alias locks on merge.
var Aliases = []Alias{
	{Name: "CMP", BaseOp: "SUBS", Locks: Locks{"Rd": 31}},
	{Name: "CMN", BaseOp: "ADDS", Locks: Locks{"Rd": 31}},
	{Name: "TST", BaseOp: "ANDS", Locks: Locks{"Rd": 31}},
}
