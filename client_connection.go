package sv2svc

import (
	"context"
	"net"

	"go.uber.org/zap"
)

// Start dials the configured server, selects the encrypted or plaintext
// transport per spec.md §6 ("auth_pk... selects encrypted transport"), runs
// the read loop and sibling forwarding loop, then starts every configured
// non-null subprotocol handler (mirroring ServerService.Start's symmetric
// handling of the lifecycle Start hook) until ctx is cancelled.
func (c *ClientService) Start(ctx context.Context) error {
	conn, err := net.Dial("tcp", c.cfg.ServerAddress)
	if err != nil {
		return newClientMsgErr(ClientErrConnectionError, err.Error())
	}
	io, err := c.newConnectionIO(conn)
	if err != nil {
		_ = conn.Close()
		return newClientMsgErr(ClientErrConnectionError, err.Error())
	}
	c.setIO(io)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	go c.siblingLoop(runCtx)

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		c.readLoop(runCtx)
	}()

	drain := func() {
		io.Shutdown()
		c.state.Store(int32(stateClosed))
		<-readDone
	}

	if err := c.startHandlers(runCtx); err != nil {
		cancelRun()
		drain()
		return err
	}

	<-runCtx.Done()
	drain()
	return nil
}

// startHandlers mirrors ServerService.startHandlers on the client half:
// Mining is driven through the dispatcher (MiningTriggerClientRequest);
// Template Distribution has no trigger envelope for Start, so its lifecycle
// hook is invoked directly.
func (c *ClientService) startHandlers(ctx context.Context) error {
	if !c.Ready() {
		return newClientErr(ClientErrServiceNotReady)
	}
	if !c.mining.IsNull() {
		if _, err := c.Call(ctx, MiningTriggerClientRequest{Trigger: MiningTriggerStart{}}); err != nil {
			return newClientMsgErr(ClientErrFailedToStartHandler, err.Error())
		}
	}
	if !c.templateDistribution.IsNull() {
		if err := c.templateDistribution.Start(ctx); err != nil {
			return newClientMsgErr(ClientErrFailedToStartHandler, err.Error())
		}
	}
	return nil
}

func (c *ClientService) newConnectionIO(conn net.Conn) (FramedMessageIo, error) {
	if c.cfg.AuthPublicKey != nil {
		return newEncryptedClientIo(conn, c.cfg.AuthPublicKey)
	}
	return newPlaintextIo(conn), nil
}

func (c *ClientService) readLoop(ctx context.Context) {
	io := c.getIO()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := io.RecvMessage()
		if err != nil {
			c.state.Store(int32(stateClosed))
			return
		}
		if _, err := c.Call(ctx, IncomingMessageToClient{Message: msg}); err != nil {
			c.logger.Warn("sv2svc: dispatch error", zap.Error(err))
		}
	}
}

func (c *ClientService) siblingLoop(ctx context.Context) {
	if c.sibling == nil {
		return
	}
	for {
		req, ok := c.sibling.Recv(ctx.Done())
		if !ok {
			return
		}
		if _, err := c.Call(ctx, req); err != nil {
			c.logger.Warn("sv2svc: sibling-forwarded request failed", zap.Error(err))
		}
	}
}
