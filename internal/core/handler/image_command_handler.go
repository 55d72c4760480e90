package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"appctl/internal/cli/output"
	"appctl/internal/cli/progress"
	"appctl/internal/ports"

	"golang.org/x/sync/errgroup"
)

const maxConcurrentRegistryRequests = 5

type ImageCommandHandler struct {
	registry ports.ContainerImageRegistry
	out      io.Writer
}

func ProvideImageCommandHandler(registry ports.ContainerImageRegistry) ImageCommandHandler {
	return ImageCommandHandler{
		registry: registry,
	}
}

// HandleDigest resolves the digest of each application image. Images missing from the
// registry are reported but do not fail the command.
func (h *ImageCommandHandler) HandleDigest(ctx context.Context, names []string) error {
	return h.forEachImage(ctx, names, "Resolving", "Resolved", func(ctx context.Context, name string) (string, error) {
		dgst, err := h.registry.GetDigest(ctx, name)
		return dgst.String(), err
	})
}

// HandleDelete removes the manifest the configured label of each application image points to
func (h *ImageCommandHandler) HandleDelete(ctx context.Context, names []string) error {
	return h.forEachImage(ctx, names, "Deleting", "Deleted", func(ctx context.Context, name string) (string, error) {
		return deleteImage(ctx, h.registry, name)
	})
}

func deleteImage(ctx context.Context, registry ports.ContainerImageRegistry, name string) (string, error) {
	dgst, err := registry.GetDigest(ctx, name)
	if err != nil || dgst == "" {
		return "", err
	}
	deleted, err := registry.DeleteManifest(ctx, name, dgst)
	if err != nil || !deleted {
		return "", err
	}
	return dgst.String(), nil
}

func (h *ImageCommandHandler) forEachImage(
	ctx context.Context,
	names []string,
	verb string,
	pastVerb string,
	operation func(ctx context.Context, name string) (string, error),
) error {
	names = slices.Compact(slices.Sorted(slices.Values(names)))
	if len(names) == 0 {
		output.PrintInfo("No images given")
		return nil
	}

	startTime := time.Now()
	output.PrintHeader(fmt.Sprintf("%s %d %s", verb, len(names), output.Plural(len(names), "image", "images")))

	var tracker *progress.Tracker
	if h.out != nil {
		tracker = progress.NewTrackerWithWriter(names, verb, h.out, false)
	} else {
		tracker = progress.NewTracker(names, verb)
	}

	errs := make([]error, len(names))
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentRegistryRequests)

	for i, name := range names {
		g.Go(func() error {
			tracker.StartItem(i)
			if err := ctx.Err(); err != nil {
				errs[i] = err
				tracker.CompleteItem(i, "", err)
				return nil
			}

			detail, err := operation(ctx, name)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", name, err)
			}
			tracker.CompleteItem(i, detail, err)
			return nil
		})
	}
	_ = g.Wait()

	succeeded, missing, failed := tracker.Counts()
	if failed > 0 {
		return fmt.Errorf("%d of %d %s failed: %w",
			failed, len(names), output.Plural(len(names), "image", "images"), errors.Join(errs...))
	}

	message := fmt.Sprintf("%s %d %s in %s",
		pastVerb, succeeded, output.Plural(succeeded, "image", "images"), progress.FormatDuration(time.Since(startTime)))
	if missing > 0 {
		output.PrintWarning(fmt.Sprintf("%d %s not found in the registry", missing, output.Plural(missing, "image", "images")))
	}
	output.PrintSuccess(message)

	return nil
}
