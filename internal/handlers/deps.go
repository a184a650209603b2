package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/go-mclib/limbo/internal/blockmapping"
	"github.com/go-mclib/limbo/internal/packetid"
	"github.com/go-mclib/limbo/internal/registry"
	"github.com/go-mclib/limbo/internal/serverstate"
)

// Deps bundles every read-only, process-wide collaborator a Session needs:
// the static registry/block tables, the numeric packet-id registry, the
// server's configuration, and the outbound collaborators (HTTP client for
// skin lookups, metrics sink, logger). One Deps is built once at startup
// and shared by every connection - nothing in it is ever mutated after
// construction, matching ServerState's own read-mostly contract.
type Deps struct {
	State *serverstate.ServerState

	Registries *registry.Manager
	Mapping    *blockmapping.Mapping
	Report     *blockmapping.ReportMapping

	PacketIDs *packetid.Registry

	HTTPClient *http.Client
	Metrics    Metrics
	Log        *logrus.Logger
}

// NewDeps wires the collaborators a Session needs, substituting a
// NopMetrics sink and a default *http.Client when the caller passes nil
// for either - every other field is mandatory and expected to be fully
// constructed already (registries, mapping, packet ids, log).
func NewDeps(state *serverstate.ServerState, registries *registry.Manager, mapping *blockmapping.Mapping, report *blockmapping.ReportMapping, packetIDs *packetid.Registry, httpClient *http.Client, metrics Metrics, log *logrus.Logger) *Deps {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Deps{
		State:      state,
		Registries: registries,
		Mapping:    mapping,
		Report:     report,
		PacketIDs:  packetIDs,
		HTTPClient: httpClient,
		Metrics:    metrics,
		Log:        log,
	}
}
