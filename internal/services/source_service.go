package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/rs/zerolog/log"

	"fastwrite/internal/llm/client"
	"fastwrite/internal/models"
)

const zipMIME = "application/zip"

// SourceService performs the lightweight checks on a project source before it is
// attached to the form. It never downloads or unpacks anything.
type SourceService struct{}

func NewSourceService() *SourceService {
	return &SourceService{}
}

// CheckArchive accepts a regular file that either ends in .zip or sniffs as a zip
// container. Contents are not inspected.
func (s *SourceService) CheckArchive(path string) (*models.ArchiveHandle, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, client.NewValidationError("archive", msgArchiveRequired)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, client.NewValidationError("archive", fmt.Sprintf("%s: %v", msgArchiveRequired, err))
	}
	if info.IsDir() {
		return nil, client.NewValidationError("archive", msgArchiveRequired)
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect archive type: %w", err)
	}
	isZip := false
	for m := mime; m != nil; m = m.Parent() {
		if m.Is(zipMIME) {
			isZip = true
			break
		}
	}
	hasExt := strings.EqualFold(filepath.Ext(path), ".zip")
	if !isZip && !hasExt {
		return nil, client.NewValidationError("archive", msgArchiveRequired)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	log.Debug().Str("path", abs).Str("mime", mime.String()).Msg("archive accepted")
	return &models.ArchiveHandle{
		Name:     info.Name(),
		Path:     abs,
		Size:     info.Size(),
		MIMEType: mime.String(),
	}, nil
}

// ProbeRepository lists the refs of a repository without cloning it. Local
// directories are opened in place; anything else is treated as a remote URL.
func (s *SourceService) ProbeRepository(ctx context.Context, url string) (*models.RepositoryProbe, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, client.NewValidationError("repositoryUrl", msgRepositoryRequired)
	}
	if info, err := os.Stat(url); err == nil && info.IsDir() {
		return s.probeLocal(url)
	}

	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})
	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list remote %s: %w", url, err)
	}
	return summarizeRefs(url, refs), nil
}

func (s *SourceService) probeLocal(path string) (*models.RepositoryProbe, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("not a valid git repository: %w", err)
	}

	var refs []*plumbing.Reference
	if head, err := repo.Reference(plumbing.HEAD, false); err == nil {
		refs = append(refs, head)
	}
	iter, err := repo.References()
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	if err := iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name() != plumbing.HEAD {
			refs = append(refs, ref)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return summarizeRefs(path, refs), nil
}

// summarizeRefs counts branches and tags and resolves the default branch from HEAD.
func summarizeRefs(url string, refs []*plumbing.Reference) *models.RepositoryProbe {
	probe := &models.RepositoryProbe{URL: url}
	var head *plumbing.Reference
	var branches []*plumbing.Reference
	for _, ref := range refs {
		switch {
		case ref.Name() == plumbing.HEAD:
			head = ref
		case ref.Name().IsBranch():
			branches = append(branches, ref)
		case ref.Name().IsTag():
			probe.Tags++
		}
	}
	probe.Branches = len(branches)
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name() < branches[j].Name() })

	if head == nil {
		return probe
	}
	if head.Type() == plumbing.SymbolicReference {
		probe.DefaultBranch = head.Target().Short()
		return probe
	}
	for _, b := range branches {
		if b.Hash() == head.Hash() {
			probe.DefaultBranch = b.Name().Short()
			break
		}
	}
	return probe
}
