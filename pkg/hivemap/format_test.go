package hivemap

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

// Порядок печати направлений всегда north, south, east, west,
// независимо от порядка во входном файле
func TestWrite_FixedDirectionOrder(t *testing.T) {
	input := "Alpha west=Wara east=Evo south=Sia north=Nia\n"
	g, in := Parse(strings.NewReader(input))

	var buf bytes.Buffer
	if err := Write(&buf, g, in); err != nil {
		t.Fatal(err)
	}

	var alphaLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "Alpha") {
			alphaLine = line
		}
	}
	want := "Alpha north=Nia south=Sia east=Evo west=Wara"
	if alphaLine != want {
		t.Errorf("Got %q, want %q", alphaLine, want)
	}
}

func TestWrite_OmitsMissingDirections(t *testing.T) {
	g, in := Parse(strings.NewReader("Solo east=Duo\nDuo\n"))

	var buf bytes.Buffer
	if err := Write(&buf, g, in); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "Solo east=Duo") {
		t.Errorf("Missing Solo line in %q", out)
	}
	if strings.Contains(out, "north=") || strings.Contains(out, "west=") {
		t.Error("Directions without tunnels must be omitted")
	}
	// Duo без выходов — просто имя
	if !strings.Contains(out, "Duo\n") {
		t.Errorf("Colony without exits should print bare name, got %q", out)
	}
}

func TestView(t *testing.T) {
	g, in := Parse(strings.NewReader("Alpha north=Buzz\nBuzz south=Alpha\n"))

	views := View(g, in)
	if len(views) != 2 {
		t.Fatalf("Expected 2 colony views, got %d", len(views))
	}
	if views[0].Name != "Alpha" {
		t.Errorf("Views must follow colony order, got %s first", views[0].Name)
	}
	if len(views[0].Tunnels) != 1 || views[0].Tunnels[0].Direction != "north" {
		t.Errorf("Alpha view mismatch: %+v", views[0])
	}
}

func TestSpawnAnts(t *testing.T) {
	g, _ := Parse(strings.NewReader("A east=B\nB west=A\nC\n"))
	rng := rand.New(rand.NewSource(1))

	ants, err := SpawnAnts(g, 10, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(ants) != 10 {
		t.Fatalf("Expected 10 ants, got %d", len(ants))
	}
	for i, a := range ants {
		if a.ID != i {
			t.Errorf("IDs must be sequential, ant %d has ID %d", i, a.ID)
		}
		if !g.Contains(a.Pos) {
			t.Errorf("Ant %d spawned in a non-existent colony", a.ID)
		}
	}
}

func TestSpawnAnts_EmptyMap(t *testing.T) {
	g, _ := Parse(strings.NewReader(""))
	rng := rand.New(rand.NewSource(1))

	if _, err := SpawnAnts(g, 3, rng); err == nil {
		t.Error("Spawning into an empty map must fail")
	}
}

func TestSpawnAnts_Deterministic(t *testing.T) {
	g, _ := Parse(strings.NewReader("A east=B\nB west=A\nC\nD\n"))

	a1, _ := SpawnAnts(g, 20, rand.New(rand.NewSource(99)))
	a2, _ := SpawnAnts(g, 20, rand.New(rand.NewSource(99)))
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatal("Same seed must give the same spawn layout")
		}
	}
}
