package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/power"
	"github.com/gtnh/gtpower/pkg/tier"
)

func grade1Builder() *Builder {
	return NewBuilder().
		Category("purificationPlantGrade1").
		ItemInputs(Item("ActivatedCarbonFilterMesh", 1)).
		FluidInputs(Fluid("DistilledWater", 1000)).
		ItemOutputs(Item("minecraft:stick", 1), Item("dustStone", 1), Item("nuggetGold", 1)).
		OutputChances(1000, 500, 100).
		FluidOutputs(Fluid("Grade1PurifiedWater", 900)).
		EUt(30720).
		Duration(2400).
		Metadata(KeyBaseChance, 70.0)
}

func TestBuilder_Build(t *testing.T) {
	d, err := grade1Builder().Build(power.NewModel(nil))
	require.NoError(t, err)

	assert.Equal(t, "purificationPlantGrade1", d.Category())
	assert.Equal(t, power.Spec{Tier: tier.LuV, EUPerTick: 30720, DurationTicks: 2400}, d.Power())
	assert.Equal(t, []ItemStack{{Item: "ActivatedCarbonFilterMesh", Quantity: 1}}, d.ItemInputs())
	assert.Equal(t, []FluidStack{{Fluid: "Grade1PurifiedWater", Amount: 900}}, d.FluidOutputs())
	assert.Equal(t, []ItemOutput{
		{Item: "minecraft:stick", Quantity: 1, ChancePerMille: 1000},
		{Item: "dustStone", Quantity: 1, ChancePerMille: 500},
		{Item: "nuggetGold", Quantity: 1, ChancePerMille: 100},
	}, d.ItemOutputs())

	chance, ok := MetadataValue[float64](d, KeyBaseChance)
	require.True(t, ok)
	assert.InDelta(t, 70.0, chance, 1e-9)

	_, ok = MetadataValue[int64](d, KeyBaseChance)
	assert.False(t, ok, "wrong type must not match")
	_, ok = MetadataValue[float64](d, "missing")
	assert.False(t, ok)
}

func TestBuilder_DefaultChances(t *testing.T) {
	d, err := NewBuilder().
		Category("assembler").
		ItemOutputs(Item("a", 1), Item("b", 2)).
		OutputChances(500).
		Build(power.NewModel(nil))
	require.NoError(t, err)

	assert.Equal(t, []OutputChance{
		{OutputIndex: 0, ChancePerMille: 500},
		{OutputIndex: 1, ChancePerMille: FullChance},
	}, d.OutputChances())
}

func TestBuilder_DefinitionIsImmutable(t *testing.T) {
	b := grade1Builder()
	d, err := b.Build(power.NewModel(nil))
	require.NoError(t, err)

	inputs := d.ItemInputs()
	inputs[0].Quantity = 99
	meta := d.Metadata()
	meta[KeyBaseChance] = 1.0
	b.ItemInputs(Item("extra", 1))

	assert.Equal(t, int64(1), d.ItemInputs()[0].Quantity)
	assert.Len(t, d.ItemInputs(), 1)
	v, _ := MetadataValue[float64](d, KeyBaseChance)
	assert.InDelta(t, 70.0, v, 1e-9)
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		code  gterrors.ErrorCode
	}{
		{
			name:  "duplicate metadata key",
			build: func() *Builder { return grade1Builder().Metadata(KeyBaseChance, 10.0) },
			code:  gterrors.ErrCodeDuplicateMetadataKey,
		},
		{
			name:  "negative duration",
			build: func() *Builder { return grade1Builder().Duration(-1) },
			code:  gterrors.ErrCodeInvalidRecipeCost,
		},
		{
			name:  "negative eut",
			build: func() *Builder { return grade1Builder().EUt(-30) },
			code:  gterrors.ErrCodeInvalidRecipeCost,
		},
		{
			name:  "chance above full",
			build: func() *Builder { return grade1Builder().OutputChances(1001) },
			code:  gterrors.ErrCodeInvalidRequest,
		},
		{
			name:  "negative chance",
			build: func() *Builder { return grade1Builder().OutputChances(-1) },
			code:  gterrors.ErrCodeInvalidRequest,
		},
		{
			name:  "more chances than outputs",
			build: func() *Builder { return grade1Builder().OutputChances(1000, 500, 100, 10) },
			code:  gterrors.ErrCodeInvalidRequest,
		},
		{
			name:  "missing category",
			build: func() *Builder { return grade1Builder().Category(" ") },
			code:  gterrors.ErrCodeInvalidRequest,
		},
		{
			name:  "empty recipe",
			build: func() *Builder { return NewBuilder().Category("mixer").EUt(30).Duration(20) },
			code:  gterrors.ErrCodeInvalidRequest,
		},
		{
			name:  "zero quantity",
			build: func() *Builder { return grade1Builder().ItemInputs(Item("foilZinc", 0)) },
			code:  gterrors.ErrCodeInvalidRequest,
		},
		{
			name:  "unnamed fluid",
			build: func() *Builder { return grade1Builder().FluidInputs(Fluid("", 1000)) },
			code:  gterrors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.build().Build(power.NewModel(nil))
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, gterrors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestBuilder_NilModel(t *testing.T) {
	_, err := grade1Builder().Build(nil)
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidRequest))
}

func TestBuilder_Flags(t *testing.T) {
	d, err := NewBuilder().
		Category("blastFurnace").
		ItemInputs(Item("dustPreActivatedCarbon", 1)).
		ItemOutputs(Item("dustDirtyActivatedCarbon", 1)).
		EUt(1920).
		Duration(200).
		SpecialValue(4501).
		NoOptimize().
		IgnoreCollision().
		Metadata(KeyCoilHeat, int64(4501)).
		Metadata("note", "coil").
		Build(power.NewModel(nil))
	require.NoError(t, err)

	assert.Equal(t, int64(4501), d.SpecialValue())
	assert.True(t, d.NoOptimize())
	assert.True(t, d.IgnoreCollision())
	assert.Equal(t, []string{KeyCoilHeat, "note"}, d.MetadataKeys())
}
