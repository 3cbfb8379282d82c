package szdb

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/armon/go-radix"

	"github.com/meigma/szdb/internal/prop"
)

// Archive is a session over one filled Database.
//
// An Archive owns its database for as long as it is open; callers must not
// modify the database until Close. Sessions share no state: options and
// properties set on one Archive never carry over to another.
//
// An Archive is not safe for concurrent use. The databases produced by
// Explode are independent and may be used concurrently.
type Archive struct {
	db       *Database
	resolver *prop.Resolver
	paths    *radix.Tree
	methods  MethodTable
	threads  int
	closed   bool
	logger   *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

// Open starts a session over db.
//
// db must be filled (see Database.Fill); DecodeDatabase returns filled
// databases. Open returns ErrInvalidArgument for a nil database and
// ErrCorruptMetadata if the derived tables are missing or inconsistent.
func Open(db *Database, opts ...Option) (*Archive, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: nil database", ErrInvalidArgument)
	}
	if err := db.CheckDerived(); err != nil {
		return nil, err
	}

	a := &Archive{
		db:      db,
		methods: DefaultMethods,
		threads: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.resolver = prop.New(db, a.methods)
	a.paths = buildPathIndex(db)

	a.log().Debug("archive opened",
		"entries", len(db.Files),
		"blocks", len(db.Folders),
		"solid", db.IsSolid(),
		"threads", a.threads)
	return a, nil
}

// Close ends the session. Later calls return ErrClosed; Close itself is
// idempotent.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.db = nil
	a.resolver = nil
	a.paths = nil
	a.log().Debug("archive closed")
	return nil
}

// Len returns the number of entries, or 0 after Close.
func (a *Archive) Len() int {
	if a.closed {
		return 0
	}
	return a.resolver.Count()
}

// Threads returns the worker count used by ExplodeResult.Encode.
func (a *Archive) Threads() int {
	return a.threads
}

// Property returns property id of the entry at index.
//
// Undefined properties are reported as an absent Value. PackSize and the
// PackedSize properties report 0 instead of absent on entries that do not
// start a folder. Property returns ErrIndexOutOfRange for a bad index and
// ErrCorruptMetadata if the entry maps to a folder that does not exist.
func (a *Archive) Property(index int, id PropID) (Value, error) {
	if a.closed {
		return prop.Absent(), ErrClosed
	}
	return a.resolver.Entry(index, id)
}

// ArchiveProperty returns archive-wide property id. PropMethod reports the
// distinct methods of all folders in ascending id order.
func (a *Archive) ArchiveProperty(id PropID) (Value, error) {
	if a.closed {
		return prop.Absent(), ErrClosed
	}
	return a.resolver.Archive(id), nil
}

// Database returns the database of the session. It must not be modified.
func (a *Archive) Database() (*Database, error) {
	if a.closed {
		return nil, ErrClosed
	}
	return a.db, nil
}

// SetProperties applies session properties given as name/value pairs.
//
// Every call starts from one thread per CPU. The only recognized property is
// the thread knob "mt": "mtN" sets N threads; plain "mt" takes its value,
// which is a decimal count, "on" (one per CPU) or "off" (one thread). Names
// are case-insensitive. Names starting with a digit are ignored. Any other
// name, or an unparsable value, returns ErrInvalidArgument and leaves the
// session unchanged.
func (a *Archive) SetProperties(props map[string]string) error {
	if a.closed {
		return ErrClosed
	}
	numCPU := runtime.NumCPU()
	threads := numCPU

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		upper := strings.ToUpper(name)
		switch {
		case upper == "":
			return fmt.Errorf("%w: empty property name", ErrInvalidArgument)
		case upper[0] >= '0' && upper[0] <= '9':
			continue
		case strings.HasPrefix(upper, "MT"):
			n, err := parseThreads(upper[2:], props[name], numCPU)
			if err != nil {
				return fmt.Errorf("%w: property %q: %v", ErrInvalidArgument, name, err)
			}
			threads = n
		default:
			return fmt.Errorf("%w: unknown property %q", ErrInvalidArgument, name)
		}
	}

	a.threads = threads
	a.log().Debug("session properties set", "threads", threads)
	return nil
}

// parseThreads parses the thread knob. suffix is the part of the name after
// "MT"; when present it is the count and value is ignored.
func parseThreads(suffix, value string, numCPU int) (int, error) {
	if suffix != "" {
		n, err := strconv.ParseUint(suffix, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("bad thread count %q", suffix)
		}
		return int(n), nil
	}
	switch strings.ToUpper(value) {
	case "", "ON", "+":
		return numCPU, nil
	case "OFF", "-":
		return 1, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad thread value %q", value)
	}
	return int(n), nil
}

// threadsOf converts a thread count into a worker count for internal/batch,
// where negative means serial.
func threadsOf(n int) int {
	if n <= 1 {
		return -1
	}
	return n
}
