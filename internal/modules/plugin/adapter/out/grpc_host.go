package out

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"tvp/internal/modules/plugin/adapter/out/rpc"
	"tvp/internal/modules/plugin/domain"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// GRPCHost launches a plugin binary per call and tears it down afterwards.
// Plugins are short-lived helpers, not daemons.
type GRPCHost struct {
	startTimeout time.Duration
	callTimeout  time.Duration
}

func NewGRPCHost() *GRPCHost {
	return &GRPCHost{
		startTimeout: defaultStartTimeout,
		callTimeout:  defaultCallTimeout,
	}
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	var meta domain.Metadata
	err := h.withClient(ctx, manifest, func(ctx context.Context, client rpc.TvpPluginClient) error {
		resp, err := client.GetMetadata(ctx)
		if err != nil {
			return err
		}
		capabilities := make([]domain.Capability, 0, len(resp.Capabilities))
		for _, capability := range resp.Capabilities {
			capabilities = append(capabilities, domain.Capability(capability))
		}
		meta = domain.Metadata{
			Name:         resp.Name,
			Version:      resp.Version,
			Capabilities: capabilities,
		}
		return nil
	})
	return meta, err
}

func (h *GRPCHost) ListCommands(ctx context.Context, manifest domain.Manifest) ([]domain.CommandDescriptor, error) {
	var commands []domain.CommandDescriptor
	err := h.withClient(ctx, manifest, func(ctx context.Context, client rpc.TvpPluginClient) error {
		resp, err := client.ListCommands(ctx)
		if err != nil {
			return err
		}
		commands = make([]domain.CommandDescriptor, 0, len(resp.Commands))
		for _, cmd := range resp.Commands {
			commands = append(commands, domain.CommandDescriptor{
				ID:              cmd.ID,
				Title:           cmd.Title,
				Description:     cmd.Description,
				Kind:            domain.CommandKind(cmd.Kind),
				InputSchemaJSON: cmd.InputSchemaJSON,
				TimeoutMS:       int(cmd.TimeoutMS),
			})
		}
		return nil
	})
	return commands, err
}

func (h *GRPCHost) Execute(ctx context.Context, manifest domain.Manifest, request domain.ExecuteRequest) (domain.ExecuteResult, error) {
	var result domain.ExecuteResult
	err := h.withClient(ctx, manifest, func(ctx context.Context, client rpc.TvpPluginClient) error {
		resp, err := client.Execute(ctx, &rpc.ExecuteRequest{
			CommandID: request.CommandID,
			InputJSON: request.InputJSON,
			Context: rpc.ExecuteContext{
				VaultPath: request.Context.VaultPath,
				DBPath:    request.Context.DBPath,
				Timeframe: request.Context.Timeframe,
				Cwd:       request.Context.Cwd,
				Env:       request.Context.Env,
			},
		})
		if err != nil {
			return err
		}
		result = domain.ExecuteResult{
			Stdout:     resp.Stdout,
			Stderr:     resp.Stderr,
			OutputJSON: resp.OutputJSON,
			ExitCode:   int(resp.ExitCode),
		}
		return nil
	})
	return result, err
}

func (h *GRPCHost) withClient(ctx context.Context, manifest domain.Manifest, fn func(context.Context, rpc.TvpPluginClient) error) error {
	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig:  rpc.HandshakeConfig,
		Plugins:          rpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolGRPC},
		Logger:           hclog.NewNullLogger(),
		StartTimeout:     h.startTimeout,
	})
	defer client.Kill()

	rpcClient, err := client.Client()
	if err != nil {
		return h.classify(ctx, fmt.Errorf("start plugin %s: %w", manifest.Name, err))
	}

	raw, err := rpcClient.Dispense(rpc.PluginMapKey)
	if err != nil {
		return fmt.Errorf("dispense plugin %s: %w", manifest.Name, err)
	}
	pluginClient, ok := raw.(rpc.TvpPluginClient)
	if !ok {
		return fmt.Errorf("plugin %s served unexpected client type %T", manifest.Name, raw)
	}

	callCtx, cancel := context.WithTimeout(ctx, h.callTimeout)
	defer cancel()

	if err := fn(callCtx, pluginClient); err != nil {
		return h.classify(callCtx, err)
	}
	return nil
}

func (h *GRPCHost) classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrPluginTimeout, err)
	}
	return err
}
