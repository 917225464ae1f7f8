package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/dedupe/lib/jobs"
)

func (d *DedupeTestSuite) submitDefaultRange() []jobs.Handle {
	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), defaultArgs())
	d.Require().NoError(err)
	return handles
}

func (d *DedupeTestSuite) TestWaitTillDone() {
	handles := d.submitDefaultRange()
	// Two jobs per round, PENDING -> RUNNING -> DONE.
	d.fakeWarehouse.GetJobReturnsOnCall(0, jobs.Status{State: jobs.Pending}, nil)
	d.fakeWarehouse.GetJobReturnsOnCall(1, jobs.Status{State: jobs.Running}, nil)
	d.fakeWarehouse.GetJobReturnsOnCall(2, jobs.Status{State: jobs.Running}, nil)
	d.fakeWarehouse.GetJobReturnsOnCall(3, jobs.Status{State: jobs.Done}, nil)
	d.fakeWarehouse.GetJobReturnsOnCall(4, jobs.Status{State: jobs.Done}, nil)
	d.fakeWarehouse.GetJobReturnsOnCall(5, jobs.Status{State: jobs.Done}, nil)

	statuses, err := d.orchestrator.WaitTillDone(context.Background(), handles, time.Millisecond)
	assert.NoError(d.T(), err)
	assert.Equal(d.T(), []jobs.Status{{State: jobs.Done}, {State: jobs.Done}}, statuses)
	assert.Equal(d.T(), 6, d.fakeWarehouse.GetJobCallCount())
	for _, handle := range handles {
		assert.Equal(d.T(), 3, d.getJobCalls(handle.ID), handle.ID)
	}

	// Jobs are polled in submission order.
	_, firstPolled := d.fakeWarehouse.GetJobArgsForCall(0)
	assert.Equal(d.T(), handles[0], firstPolled)

	gauges := d.lastGauges()
	assert.Equal(d.T(), float64(2), gauges["jobs.done"])
	assert.Equal(d.T(), float64(0), gauges["jobs.pending"])
	assert.Equal(d.T(), float64(0), gauges["jobs.running"])

	assert.Equal(d.T(), 1, d.fakeMetrics.TimingCallCount())
	name, _, _ := d.fakeMetrics.TimingArgsForCall(0)
	assert.Equal(d.T(), "jobs.wait", name)
}

func (d *DedupeTestSuite) TestWaitTillDone_AlreadyDone() {
	handles := d.submitDefaultRange()
	d.fakeWarehouse.GetJobReturns(jobs.Status{State: jobs.Done}, nil)

	// A long interval proves we never slept.
	statuses, err := d.orchestrator.WaitTillDone(context.Background(), handles, time.Hour)
	assert.NoError(d.T(), err)
	assert.Len(d.T(), statuses, 2)
	for _, handle := range handles {
		assert.Equal(d.T(), 1, d.getJobCalls(handle.ID))
	}
}

func (d *DedupeTestSuite) TestWaitTillDone_NoJobs() {
	statuses, err := d.orchestrator.WaitTillDone(context.Background(), nil, time.Hour)
	assert.NoError(d.T(), err)
	assert.Empty(d.T(), statuses)
	assert.Zero(d.T(), d.fakeWarehouse.GetJobCallCount())
}

func (d *DedupeTestSuite) TestWaitTillDone_FailedJob() {
	handles := d.submitDefaultRange()
	d.fakeWarehouse.GetJobReturnsOnCall(0, jobs.Status{State: jobs.Running}, nil)
	d.fakeWarehouse.GetJobReturnsOnCall(1, jobs.Status{State: jobs.Running}, nil)
	d.fakeWarehouse.GetJobReturnsOnCall(2, jobs.Status{State: jobs.Done}, nil)
	d.fakeWarehouse.GetJobReturnsOnCall(3, jobs.Status{State: jobs.Done, Err: fmt.Errorf("Resources exceeded")}, nil)

	statuses, err := d.orchestrator.WaitTillDone(context.Background(), handles, time.Millisecond)
	assert.ErrorContains(d.T(), err, fmt.Sprintf(`job %q for table "ltv_20200102" failed: Resources exceeded`, handles[1].ID))
	assert.NotContains(d.T(), err.Error(), "ltv_20200101")
	// Statuses are still handed back so they can be reported.
	assert.Len(d.T(), statuses, 2)
	assert.False(d.T(), statuses[0].Failed())
	assert.True(d.T(), statuses[1].Failed())
}

func (d *DedupeTestSuite) TestWaitTillDone_PollError() {
	handles := d.submitDefaultRange()
	d.fakeWarehouse.GetJobReturns(jobs.Status{}, fmt.Errorf("connection reset"))

	_, err := d.orchestrator.WaitTillDone(context.Background(), handles, time.Millisecond)
	assert.ErrorContains(d.T(), err, "failed to poll jobs: connection reset")
	assert.Equal(d.T(), 1, d.fakeWarehouse.GetJobCallCount())
}

func (d *DedupeTestSuite) TestWaitTillDone_Cancelled() {
	handles := d.submitDefaultRange()
	d.fakeWarehouse.GetJobReturns(jobs.Status{State: jobs.Running}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.orchestrator.WaitTillDone(ctx, handles, time.Hour)
	assert.ErrorIs(d.T(), err, context.Canceled)
	assert.ErrorContains(d.T(), err, "stopped waiting for jobs")
	for _, handle := range handles {
		assert.Equal(d.T(), 1, d.getJobCalls(handle.ID))
	}
}

func (d *DedupeTestSuite) TestWaitTillDone_Deadline() {
	handles := d.submitDefaultRange()
	d.fakeWarehouse.GetJobReturns(jobs.Status{State: jobs.Pending}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := d.orchestrator.WaitTillDone(ctx, handles, time.Millisecond)
	assert.ErrorIs(d.T(), err, context.DeadlineExceeded)
	assert.Zero(d.T(), d.fakeMetrics.TimingCallCount())
}
