package dealcloud

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/core/ports"
	"github.com/dealdesk/dcverify/internal/errors"
)

const ProviderTypeDealCloud = "dealcloud"

// fieldCountConcurrency bounds the parallel field lookups done by the
// objects --counts command. The verification pass itself is strictly serial.
const fieldCountConcurrency = 4

// Provider implements ports.SchemaFetcher and ports.ObjectExplorer on top of
// the DealCloud schema API.
type Provider struct {
	client *Client
	logger ports.Logger
}

func NewProvider(cfg Config, logger ports.Logger) (*Provider, error) {
	plog := logger.WithFields(map[string]any{"provider": ProviderTypeDealCloud})
	client, err := NewClient(cfg, plog)
	if err != nil {
		return nil, err
	}
	return &Provider{client: client, logger: plog}, nil
}

func (p *Provider) Type() string { return ProviderTypeDealCloud }

// FetchSchema locates the named object and returns its live field
// definitions. Lookup is case-insensitive across the object's API, singular
// and plural names, matching how operators refer to objects in the UI.
func (p *Provider) FetchSchema(ctx context.Context, objectName string) (*domain.ActualObjectSchema, error) {
	objects, err := p.client.ListObjects(ctx)
	if err != nil {
		return nil, err
	}
	p.logger.Debugf(ctx, "Retrieved %d objects from DealCloud", len(objects))

	obj, found := findObject(objects, objectName)
	if !found {
		return nil, errors.NewUserFacing(errors.CodeObjectNotFound,
			fmt.Sprintf("object %q not found in DealCloud", objectName),
			"Run 'dcverify objects' to list the available objects.")
	}

	fields, err := p.client.ListFields(ctx, obj.ID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodePlatformAPIError,
			fmt.Sprintf("failed to retrieve fields for object %q", objectName))
	}
	p.logger.Debugf(ctx, "Retrieved %d fields for object '%s' (id %d)", len(fields), obj.APIName, obj.ID)

	return mapSchema(obj, fields, objectNameIndex(objects)), nil
}

// ListObjects returns the identities of every object on the site, sorted by
// API name for stable output.
func (p *Provider) ListObjects(ctx context.Context) ([]domain.ObjectIdentity, error) {
	objects, err := p.client.ListObjects(ctx)
	if err != nil {
		return nil, err
	}

	identities := make([]domain.ObjectIdentity, 0, len(objects))
	for _, obj := range objects {
		identities = append(identities, mapObjectIdentity(obj))
	}
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].APIName < identities[j].APIName
	})
	return identities, nil
}

// FieldCounts fetches the number of fields defined on each object, a few at
// a time. Used only by exploration tooling, never by the verification pass.
func (p *Provider) FieldCounts(ctx context.Context, objects []domain.ObjectIdentity) (map[int]int, error) {
	counts := make(map[int]int, len(objects))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fieldCountConcurrency)

	for _, obj := range objects {
		obj := obj
		g.Go(func() error {
			fields, err := p.client.ListFields(gctx, obj.ID)
			if err != nil {
				return errors.Wrap(err, errors.CodePlatformAPIError,
					fmt.Sprintf("failed to count fields for object %q", obj.APIName))
			}
			mu.Lock()
			counts[obj.ID] = len(fields)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func findObject(objects []objectEntry, name string) (objectEntry, bool) {
	search := strings.ToLower(name)
	for _, obj := range objects {
		identity := mapObjectIdentity(obj)
		for _, candidate := range []string{identity.APIName, identity.SingularName, identity.PluralName} {
			if candidate != "" && strings.ToLower(candidate) == search {
				return obj, true
			}
		}
	}
	return objectEntry{}, false
}
