// Package repo implements gitlet's commit engine, working-tree
// reconciler, history queries, and merge engine on top of pkg/objects,
// pkg/refs, and pkg/staging. It is grounded on the teacher's pkg/repo
// package (odvcencio-got), carrying its Repo-as-method-receiver shape and
// its "resolve ref, read store, mutate working dir, write back" command
// flow, but reworked around spec.md's flat commit-files model instead of
// the teacher's tree objects.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/internal/logging"
	"github.com/odvcencio/gitlet/pkg/objects"
	"github.com/odvcencio/gitlet/pkg/refs"
	"github.com/odvcencio/gitlet/pkg/staging"
)

// MetadataDirName is the hidden directory holding all persisted state.
const MetadataDirName = ".gitlet"

const mainBranch = "main"

const commitCacheSize = 256

// Repo is an opened gitlet repository, scoped to one command invocation.
type Repo struct {
	RootDir   string
	GitletDir string
	Store     *objects.Store
	Refs      *refs.Store
	Staging   *staging.Store
	Logger    *logging.Logger

	// commitCache memoizes GetCommit lookups for the lifetime of this Repo
	// value. It exists purely to avoid re-reading and re-deserializing the
	// same commit repeatedly during merge's double-BFS and log's parent
	// walk (spec.md §9); it is never consulted for correctness and could
	// be removed without changing any observable behavior. Grounded on
	// RobAntunes-TigVCS/internal/safe/safe.go's lru.Cache[string,[]byte].
	commitCache *lru.Cache[objects.Hash, *objects.Commit]
}

func newRepo(rootDir, gitletDir string, log *logging.Logger) *Repo {
	if log == nil {
		log = logging.Noop()
	}
	cache, _ := lru.New[objects.Hash, *objects.Commit](commitCacheSize)
	return &Repo{
		RootDir:     rootDir,
		GitletDir:   gitletDir,
		Store:       objects.NewStore(gitletDir),
		Refs:        refs.NewStore(gitletDir),
		Staging:     staging.NewStore(gitletDir),
		Logger:      log,
		commitCache: cache,
	}
}

// Init creates a fresh .gitlet metadata area under rootDir and the initial
// commit + main branch + HEAD, per spec.md §3 invariant 4. It fails with
// ErrAlreadyInitialized if a .gitlet directory already exists.
func Init(rootDir string, log *logging.Logger) (*Repo, error) {
	gitletDir := filepath.Join(rootDir, MetadataDirName)
	if _, err := os.Stat(gitletDir); err == nil {
		return nil, ErrAlreadyInitialized
	}

	for _, d := range []string{gitletDir, filepath.Join(gitletDir, "commits"), filepath.Join(gitletDir, "blobs"), filepath.Join(gitletDir, "branches")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	r := newRepo(rootDir, gitletDir, log)

	initial := objects.InitialCommit()
	id, err := r.Store.PutCommit(initial)
	if err != nil {
		return nil, fmt.Errorf("init: write initial commit: %w", err)
	}
	if err := r.Refs.CreateBranch(mainBranch, id); err != nil {
		return nil, fmt.Errorf("init: create main branch: %w", err)
	}
	if err := r.Refs.SetHeadBranch(mainBranch); err != nil {
		return nil, fmt.Errorf("init: set HEAD: %w", err)
	}
	if err := r.Staging.Save(staging.New()); err != nil {
		return nil, fmt.Errorf("init: write staging area: %w", err)
	}

	r.Logger.Info("initialized repository", zap.String("root", rootDir), zap.String("initial_commit", string(id)))
	return r, nil
}

// Open opens the repository rooted at rootDir. It fails with
// ErrNotInitialized if no .gitlet directory exists there (unlike the
// teacher's Open, gitlet never searches parent directories — spec.md's
// persisted layout and "Not in an initialized Gitlet directory." message
// are both scoped to the current directory only).
func Open(rootDir string, log *logging.Logger) (*Repo, error) {
	gitletDir := filepath.Join(rootDir, MetadataDirName)
	info, err := os.Stat(gitletDir)
	if err != nil || !info.IsDir() {
		return nil, ErrNotInitialized
	}
	return newRepo(rootDir, gitletDir, log), nil
}

// headBranch returns the current branch name.
func (r *Repo) headBranch() (string, error) {
	return r.Refs.HeadBranch()
}

// headCommitID returns the commit id the current branch points at.
func (r *Repo) headCommitID() (objects.Hash, error) {
	branch, err := r.headBranch()
	if err != nil {
		return "", err
	}
	return r.Refs.BranchCommit(branch)
}

// headCommit reads and returns the full HEAD commit.
func (r *Repo) headCommit() (*objects.Commit, error) {
	id, err := r.headCommitID()
	if err != nil {
		return nil, err
	}
	return r.getCommit(id)
}

// getCommit reads a commit by id, consulting and populating the
// invocation-scoped commit cache.
func (r *Repo) getCommit(id objects.Hash) (*objects.Commit, error) {
	if r.commitCache != nil {
		if c, ok := r.commitCache.Get(id); ok {
			return c, nil
		}
	}
	c, err := r.Store.GetCommit(id)
	if err != nil {
		return nil, err
	}
	if r.commitCache != nil {
		r.commitCache.Add(id, c)
	}
	return c, nil
}

// absPath resolves a repo-relative path to an absolute filesystem path.
func (r *Repo) absPath(path string) string {
	return filepath.Join(r.RootDir, filepath.FromSlash(path))
}
