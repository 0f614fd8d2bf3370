package fixtures

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	"gallera-api/packages/core/models"
	"gallera-api/packages/core/tournament"
	"gallera-api/packages/core/utils"
)

// DemoRoosterCount is the number of roosters in the demo roster.
const DemoRoosterCount = 100

type demoTeam struct {
	id     string
	name   string
	owner  string
	city   string
	fronts int
}

var demoTeams = []demoTeam{
	{"demo-c1", "Hacienda San José", "Juan Pérez", "Medellín", 2},
	{"demo-c2", "Criadero El Triunfo", "Carlos Ruiz", "Cali", 2},
	{"demo-c3", "Cuerda Los Compadres", "Roberto Gómez", "Pereira", 1},
	{"demo-c4", "Gallera La Herradura", "Luis Martínez", "Bogotá", 2},
	{"demo-c5", "Criadero El Diamante", "Andrés López", "Bucaramanga", 1},
	{"demo-c6", "Cuerda Los Galleros", "Miguel Ángel", "Manizales", 1},
	{"demo-c7", "Hacienda La Victoria", "Jorge Iván", "Ibagué", 1},
	{"demo-c8", "Criadero El Fénix", "Felipe Marín", "Armenia", 1},
	{"demo-c9", "Cuerda Los Amigos", "Ricardo Soto", "Montería", 1},
	{"demo-c10", "Gallera El Palacio", "Oscar Duarte", "Sincelejo", 1},
}

var (
	demoColors     = []string{"Giro", "Colorado", "Cenizo", "Jabao", "Marañón", "Canelo", "Blanco", "Pintado"}
	demoPhenotypes = []models.Phenotype{models.PhenotypeLiso, models.PhenotypePava}
)

// DemoTeams returns the demo cuerdas, some of them split into two fronts.
func DemoTeams() []models.Team {
	var teams []models.Team
	for _, d := range demoTeams {
		base := models.NewBaseTeam(d.id, d.name, d.owner, d.city)
		teams = append(teams, base)
		for n := 2; n <= d.fronts; n++ {
			teams = append(teams, models.NewFront(fmt.Sprintf("%s-f%d", d.id, n), base, n))
		}
	}
	return teams
}

// DemoRoosters draws DemoRoosterCount roosters spread over teams. Weights are
// 3 to 4 lb 15 oz and ages 8 to 23 months.
func DemoRoosters(teams []models.Team, rng *rand.Rand) []models.Rooster {
	roosters := make([]models.Rooster, 0, DemoRoosterCount)
	for i := 0; i < DemoRoosterCount; i++ {
		team := teams[rng.Intn(len(teams))]
		age := 8 + rng.Intn(16)
		roosters = append(roosters, models.Rooster{
			ID:             fmt.Sprintf("demo-gallo-%d", i),
			RingID:         fmt.Sprintf("R-%d", 1000+i),
			MarkingID:      fmt.Sprintf("M-%d", 2000+i),
			BreederPlateID: fmt.Sprintf("PC-%d", 3000+i),
			Color:          demoColors[rng.Intn(len(demoColors))],
			TeamID:         team.ID,
			Weight:         utils.OuncesFromLbsOz(3+rng.Intn(2), rng.Intn(16)),
			AgeMonths:      age,
			Mark:           1 + rng.Intn(12),
			Phenotype:      demoPhenotypes[rng.Intn(len(demoPhenotypes))],
			AgeCategory:    models.AgeCategoryFor(age),
		})
	}
	return roosters
}

// SessionStore is the part of the session store fixtures need.
type SessionStore interface {
	Load(ctx context.Context) (tournament.State, bool, error)
	Save(ctx context.Context, state tournament.State) error
	Clear(ctx context.Context) error
}

type Fixtures struct {
	store SessionStore
	seed  int64
}

func NewFixtures(store SessionStore, seed int64) *Fixtures {
	return &Fixtures{store: store, seed: seed}
}

// GenerateDemoData loads the demo teams and roster into the stored session.
func (f *Fixtures) GenerateDemoData(ctx context.Context) error {
	log.Info().Msg("Starting fixtures generation...")

	state, ok, err := f.store.Load(ctx)
	if err != nil {
		return eris.Wrap(err, "failed to load session")
	}
	if !ok {
		state = tournament.NewDefaultState(time.Now())
	}

	teams := DemoTeams()
	roosters := DemoRoosters(teams, rand.New(rand.NewSource(f.seed))) // #nosec G404

	state, err = state.LoadDemo(teams, roosters)
	if err != nil {
		return eris.Wrap(err, "failed to load demo data")
	}
	if err := f.store.Save(ctx, state); err != nil {
		return eris.Wrap(err, "failed to save session")
	}

	log.Info().
		Int("teams", len(teams)).
		Int("roosters", len(roosters)).
		Int("day", state.CurrentDay).
		Msg("Fixtures generated successfully")
	return nil
}

// ClearAllData removes the stored session.
func (f *Fixtures) ClearAllData(ctx context.Context) error {
	if err := f.store.Clear(ctx); err != nil {
		return eris.Wrap(err, "failed to clear session")
	}
	log.Info().Msg("Session data cleared")
	return nil
}
