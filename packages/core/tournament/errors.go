package tournament

import "github.com/rotisserie/eris"

// Validation rejections. The state is left untouched.
var (
	ErrDuplicateRingID       = eris.New("ring id already registered for this day")
	ErrWeightOutOfRange      = eris.New("weight outside the tournament band")
	ErrMissingClassification = eris.New("missing required rooster classification")
	ErrRosterCapReached      = eris.New("roster cap reached for this front")
	ErrZeroDuration          = eris.New("a win needs a fight duration")
	ErrInvalidWinner         = eris.New("invalid fight winner")
	ErrInvalidTeam           = eris.New("invalid team data")
	ErrInvalidRules          = eris.New("invalid tournament rules")
	ErrInvalidException      = eris.New("invalid exception pair")
	ErrSameRooster           = eris.New("a rooster cannot fight itself")
)

// Structural guard.
var ErrBaseTeamHasFronts = eris.New("base team still has fronts")

// Not found.
var (
	ErrTeamNotFound      = eris.New("team not found")
	ErrRoosterNotFound   = eris.New("rooster not found")
	ErrExceptionNotFound = eris.New("exception not found")
	ErrInvalidDay        = eris.New("day not available")
)

// State conflicts.
var (
	ErrDayReadOnly          = eris.New("day is read-only")
	ErrTournamentFinished   = eris.New("tournament already finished")
	ErrTournamentRunning    = eris.New("tournament still running")
	ErrDayAlreadyStarted    = eris.New("fights for this day already started")
	ErrDayNotStarted        = eris.New("fights for this day have not started")
	ErrNoMatchmakingResult  = eris.New("no matchmaking result for this day")
	ErrEmptyCard            = eris.New("matchmaking produced no fights")
	ErrRoosterNotUnpaired   = eris.New("rooster is not waiting for a pair")
	ErrFightAlreadyFinished = eris.New("fight already finished")
)
