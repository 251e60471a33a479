package services

import "testing"

func TestSizeSystemKnownValues(t *testing.T) {
	// 4 kWh/day / 5.2 HSP / 0.8 = 0.9615 kWp; ceil(961.5 / 425) = 3 panels.
	res := SizeSystem(4.0, 425, 80)
	if res.NeededKWp != 0.96 {
		t.Fatalf("expected 0.96 kWp got %v", res.NeededKWp)
	}
	if res.PanelCount != 3 {
		t.Fatalf("expected 3 panels got %d", res.PanelCount)
	}
}

func TestSizeSystemZeroDaily(t *testing.T) {
	res := SizeSystem(0, 425, 80)
	if res.NeededKWp != 0 || res.PanelCount != 0 {
		t.Fatalf("zero daily draw must size to zero, got %+v", res)
	}
}

func TestSizeSystemMonotonicInDaily(t *testing.T) {
	prev := SizeSystem(0, 425, 80)
	for kwh := 0.5; kwh <= 50; kwh += 0.5 {
		cur := SizeSystem(kwh, 425, 80)
		if cur.NeededKWp < prev.NeededKWp {
			t.Fatalf("kWp decreased from %v to %v at %v kWh", prev.NeededKWp, cur.NeededKWp, kwh)
		}
		if cur.PanelCount < prev.PanelCount {
			t.Fatalf("panel count decreased from %d to %d at %v kWh", prev.PanelCount, cur.PanelCount, kwh)
		}
		prev = cur
	}
}

func TestSizeSystemEfficiencyFloor(t *testing.T) {
	// Efficiency at/below 10% hits the floor: same result as 10%.
	floored := SizeSystem(10, 425, 10)
	if got := SizeSystem(10, 425, 0); got != floored {
		t.Fatalf("efficiency 0 must behave like the 0.1 floor: %+v vs %+v", got, floored)
	}
	if got := SizeSystem(10, 425, -50); got != floored {
		t.Fatalf("negative efficiency must behave like the 0.1 floor: %+v", got)
	}
}

func TestSizeSystemPanelWattageFloor(t *testing.T) {
	// Non-positive wattage degrades to 1 W panels: huge count, no crash.
	res := SizeSystem(1, 0, 100)
	if res.PanelCount <= 0 {
		t.Fatalf("expected a positive panel count, got %d", res.PanelCount)
	}
	if res != SizeSystem(1, 1, 100) {
		t.Fatalf("wattage 0 must behave like 1 W")
	}
}
