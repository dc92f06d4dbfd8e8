package sv2svc

import (
	"context"
	"net"
	"time"

	"github.com/hako/durafmt"
	"github.com/remeh/sizedwaitgroup"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// acceptBurst and acceptRatePerSecond bound how fast the accept loop
// onboards new connections, grounded in the p2p server's use of
// golang.org/x/time/rate to guard a stream send path against overload.
const (
	acceptRatePerSecond = 200
	acceptBurst         = 200

	reaperTick = time.Second
)

// Start runs the accept loop, inactivity reaper, and sibling forwarding loop,
// then starts every configured non-null subprotocol handler, mirroring the
// original's start() (original_source's server/service/mod.rs: ready-gate
// then dispatch MiningServerTrigger::Start before waiting on cancellation).
// After cancellation it returns once the accept loop has stopped, in-flight
// onboarding has finished and every client record has been drained; the
// reaper, sibling and per-client read loops are stopped through the
// cancelled context or the closed client IO but are not waited for. It
// returns early if a handler fails to start.
func (s *ServerService) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.TCP.ListenAddress)
	if err != nil {
		return newServerMsgErr(ServerErrTCPServerError, err.Error())
	}
	s.addr.Store(ln.Addr())
	close(s.listening)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	limiter := rate.NewLimiter(rate.Limit(acceptRatePerSecond), acceptBurst)
	swg := sizedwaitgroup.New(s.cfg.MaxConcurrentOnboarding)

	go s.reapLoop(runCtx)
	go s.siblingLoop(runCtx)

	acceptDone := make(chan struct{})
	go func() {
		defer close(acceptDone)
		for {
			conn, err := ln.Accept()
			if err != nil {
				select {
				case <-runCtx.Done():
					return
				default:
				}
				s.logger.Warn("sv2svc: accept failed", zap.Error(err))
				return
			}
			if err := limiter.Wait(runCtx); err != nil {
				_ = conn.Close()
				continue
			}
			swg.Add()
			go func() {
				defer swg.Done()
				s.onboard(runCtx, conn)
			}()
		}
	}()

	drain := func() {
		_ = ln.Close()
		<-acceptDone
		swg.Wait()
		s.removeAllClientRecords()
	}

	if err := s.startHandlers(runCtx); err != nil {
		cancelRun()
		drain()
		return err
	}

	<-runCtx.Done()
	drain()
	return nil
}

// startHandlers gates on readiness and starts every non-null subprotocol
// handler, per spec.md §4.1 "Readiness" and the original's mining-handler
// start dispatch. Mining is driven through the request dispatcher itself
// (MiningServerTrigger::Start in the original); Job Declaration and Template
// Distribution have no trigger envelope at this layer, so their lifecycle
// Start hook is invoked directly.
func (s *ServerService) startHandlers(ctx context.Context) error {
	if !s.Ready() {
		return newServerErr(ServerErrServiceNotReady)
	}
	if !s.mining.IsNull() {
		if _, err := s.Call(ctx, MiningTriggerRequest{Trigger: MiningTriggerStart{}}); err != nil {
			return newServerMsgErr(ServerErrFailedToStartHandler, err.Error())
		}
	}
	if !s.jobDeclaration.IsNull() {
		if err := s.jobDeclaration.Start(ctx); err != nil {
			return newServerMsgErr(ServerErrFailedToStartHandler, err.Error())
		}
	}
	if !s.templateDistribution.IsNull() {
		if err := s.templateDistribution.Start(ctx); err != nil {
			return newServerMsgErr(ServerErrFailedToStartHandler, err.Error())
		}
	}
	return nil
}

func (s *ServerService) onboard(ctx context.Context, conn net.Conn) {
	io, err := s.newConnectionIO(conn)
	if err != nil {
		s.logger.Warn("sv2svc: failed to establish client transport", zap.Error(err))
		_ = conn.Close()
		return
	}
	id := s.idGen.Next()
	rec := newClientRecord(id, io)
	s.addClientRecord(rec)
	go s.readLoop(ctx, rec)
}

func (s *ServerService) newConnectionIO(conn net.Conn) (FramedMessageIo, error) {
	if s.cfg.TCP.PrivateKey != nil {
		return newEncryptedServerIo(conn, s.cfg.TCP.PrivateKey)
	}
	return newPlaintextIo(conn), nil
}

// readLoop is the per-client reader task: it blocks on inbound frames,
// serialising dispatch for this client (spec.md §5 "Per-client inbound").
func (s *ServerService) readLoop(ctx context.Context, rec *ClientRecord) {
	for {
		select {
		case <-ctx.Done():
			s.removeClientRecord(rec.ID)
			return
		default:
		}

		msg, err := rec.IO.RecvMessage()
		if err != nil {
			s.removeClientRecord(rec.ID)
			return
		}
		rec.touch()

		id := rec.ID
		if _, err := s.Call(ctx, IncomingMessageToServer{Message: msg, ClientID: &id}); err != nil {
			s.logger.Warn("sv2svc: dispatch error for client", zap.Uint32("client_id", id), zap.Error(err))
		}
	}
}

// reapLoop removes clients silent for longer than the configured inactivity
// limit, satisfying spec.md §8 invariant 4.
func (s *ServerService) reapLoop(ctx context.Context) {
	ticker := time.NewTicker(reaperTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.clients.Range(func(key, value any) bool {
				rec := value.(*ClientRecord)
				if rec.IsInactive(s.cfg.InactivityLimit) {
					idle := time.Since(rec.LastMessageTime())
					s.logger.Info("sv2svc: reaping inactive client",
						zap.Uint32("client_id", rec.ID),
						zap.String("idle", durafmt.Parse(idle).String()))
					s.removeClientRecord(rec.ID)
				}
				return true
			})
		}
	}
}

// siblingLoop forwards every request arriving from the paired client
// service into this service's own dispatcher.
func (s *ServerService) siblingLoop(ctx context.Context) {
	if s.sibling == nil {
		return
	}
	for {
		req, ok := s.sibling.Recv(ctx.Done())
		if !ok {
			return
		}
		if _, err := s.Call(ctx, req); err != nil {
			s.logger.Warn("sv2svc: sibling-forwarded request failed", zap.Error(err))
		}
	}
}
