package trigger

import (
	"context"
	"fmt"
	"time"

	"github.com/tradespark/tradespark-api/pkg/httpclient"
	"github.com/tradespark/tradespark-api/pkg/logger"
	"github.com/tradespark/tradespark-api/pkg/retry"
	"go.uber.org/zap"
)

// CallAsync pings a trigger URL asynchronously with a submission reference as
// a query suffix. Used to notify downstream automations (email sequences,
// sales alerts) after a lead or contact has been accepted. Failures are
// retried a couple of times and then logged; they never block or fail the
// submission itself.
func CallAsync(triggerURL, submissionRef string, httpClient httpclient.Client) {
	if triggerURL == "" {
		// No trigger configured, skip silently
		return
	}

	go func() {
		targetURL := fmt.Sprintf("%s%s", triggerURL, submissionRef)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := retry.Do(ctx, retry.TriggerConfig(), "event_trigger", func() error {
			resp, err := httpClient.Get(targetURL)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return fmt.Errorf("trigger returned status %d", resp.StatusCode)
			}
			return nil
		})
		if err != nil {
			logger.Error("Failed to call trigger URL",
				zap.Error(err),
				zap.String("url", triggerURL),
				zap.String("submission_ref", submissionRef))
			return
		}

		logger.Info("Trigger URL called successfully",
			zap.String("url", triggerURL),
			zap.String("submission_ref", submissionRef))
	}()
}
