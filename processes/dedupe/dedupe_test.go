package dedupe

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/dedupe/clients/bigquery"
	"github.com/artie-labs/dedupe/clients/bigquery/dialect"
	"github.com/artie-labs/dedupe/lib/config"
	"github.com/artie-labs/dedupe/lib/jobs"
	"github.com/artie-labs/dedupe/lib/mocks"
)

func defaultArgs() config.Dedupe {
	return config.Dedupe{
		Project:     "ltv-modeling-user",
		Dataset:     "ltv",
		TableSuffix: "ltv_",
		StartDate:   "20200101",
		EndDate:     "20200102",
	}
}

func (d *DedupeTestSuite) TestNewJobID() {
	jobID := newJobID("ltv_20200101")
	assert.True(d.T(), strings.HasPrefix(jobID, "dedupe_ltv_20200101_"), jobID)
	assert.NotEqual(d.T(), jobID, newJobID("ltv_20200101"))
}

func (d *DedupeTestSuite) TestNewOrchestrator_Limiter() {
	assert.Nil(d.T(), NewOrchestrator(d.fakeWarehouse, d.fakeMetrics, 0).limiter)
	assert.NotNil(d.T(), NewOrchestrator(d.fakeWarehouse, d.fakeMetrics, 2).limiter)
}

func (d *DedupeTestSuite) TestDoesTableExist() {
	d.setMissingTables("ltv_20200102")

	assert.NoError(d.T(), d.orchestrator.DoesTableExist(context.Background(), dialect.NewTableIdentifier("p", "d", "ltv_20200101")))
	err := d.orchestrator.DoesTableExist(context.Background(), dialect.NewTableIdentifier("p", "d", "ltv_20200102"))
	assert.ErrorIs(d.T(), err, bigquery.ErrTableNotFound)
	assert.ErrorContains(d.T(), err, "p.d.ltv_20200102")
	assert.Equal(d.T(), 2, d.fakeWarehouse.GetTableCallCount())
}

func (d *DedupeTestSuite) TestRemoveDuplicates() {
	tableID := dialect.NewTableIdentifier("p", "d", "ltv_20200101")
	handle, err := d.orchestrator.RemoveDuplicates(context.Background(), tableID)
	assert.NoError(d.T(), err)
	assert.Equal(d.T(), "ltv_20200101", handle.Table)
	assert.Equal(d.T(), "US", handle.Location)
	assert.Equal(d.T(), []string{dialect.BigQueryDialect{}.BuildDedupeQuery(tableID)}, d.queries())

	assert.Equal(d.T(), 1, d.fakeMetrics.IncrCallCount())
	name, tags := d.fakeMetrics.IncrArgsForCall(0)
	assert.Equal(d.T(), "jobs.submitted", name)
	assert.Equal(d.T(), map[string]string{"dataset": "d", "table": "ltv_20200101"}, tags)
}

func (d *DedupeTestSuite) TestRemoveDuplicates_QueryError() {
	d.fakeWarehouse.QueryReturns(jobs.Handle{}, fmt.Errorf("quota exceeded"))
	_, err := d.orchestrator.RemoveDuplicates(context.Background(), dialect.NewTableIdentifier("p", "d", "ltv_20200101"))
	assert.ErrorContains(d.T(), err, `failed to submit dedupe job for "p.d.ltv_20200101": quota exceeded`)
	assert.Zero(d.T(), d.fakeMetrics.IncrCallCount())
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange() {
	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), defaultArgs())
	assert.NoError(d.T(), err)
	assert.Len(d.T(), handles, 2)
	assert.Equal(d.T(), "ltv_20200101", handles[0].Table)
	assert.Equal(d.T(), "ltv_20200102", handles[1].Table)
	assert.Equal(d.T(), d.submittedJobIDs(), jobIDs(handles))
	assert.Equal(d.T(), []string{"ltv-modeling-user.ltv.ltv_20200101", "ltv-modeling-user.ltv.ltv_20200102"}, d.tablesChecked())

	queries := d.queries()
	assert.Len(d.T(), queries, 2)
	assert.Contains(d.T(), queries[0], "MERGE `ltv-modeling-user.ltv.ltv_20200101` AS target_t")
	assert.Contains(d.T(), queries[1], "MERGE `ltv-modeling-user.ltv.ltv_20200102` AS target_t")
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_EmptyTableSuffix() {
	args := defaultArgs()
	args.TableSuffix = ""

	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), args)
	assert.NoError(d.T(), err)
	assert.Len(d.T(), handles, 2)
	assert.Equal(d.T(), "20200101", handles[0].Table)
	assert.Equal(d.T(), "20200102", handles[1].Table)
	assert.Equal(d.T(), []string{"ltv-modeling-user.ltv.20200101", "ltv-modeling-user.ltv.20200102"}, d.tablesChecked())
	assert.Contains(d.T(), d.queries()[0], "MERGE `ltv-modeling-user.ltv.20200101` AS target_t")
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_OneJobPerDay() {
	args := defaultArgs()
	args.StartDate = "20200201"
	args.EndDate = "20200301"

	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), args)
	assert.NoError(d.T(), err)
	// 2020 is a leap year.
	assert.Len(d.T(), handles, 30)
	assert.Equal(d.T(), "ltv_20200229", handles[28].Table)
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_EmptyRange() {
	args := defaultArgs()
	args.StartDate = "20200105"
	args.EndDate = "20200101"

	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), args)
	assert.NoError(d.T(), err)
	assert.Empty(d.T(), handles)
	assert.Zero(d.T(), d.fakeWarehouse.GetTableCallCount())
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_MissingFirstTable() {
	d.setMissingTables("ltv_20200101")

	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), defaultArgs())
	assert.ErrorIs(d.T(), err, bigquery.ErrTableNotFound)
	assert.Nil(d.T(), handles)
	assert.Zero(d.T(), d.fakeWarehouse.QueryCallCount())
	// Later dates are never looked at.
	assert.Equal(d.T(), []string{"ltv-modeling-user.ltv.ltv_20200101"}, d.tablesChecked())
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_MissingLaterTable() {
	d.setMissingTables("ltv_20200102")
	args := defaultArgs()
	args.EndDate = "20200103"

	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), args)
	assert.ErrorIs(d.T(), err, bigquery.ErrTableNotFound)
	assert.Nil(d.T(), handles)
	// The first job was already submitted and is not rolled back.
	assert.Equal(d.T(), 1, d.fakeWarehouse.QueryCallCount())
	assert.Equal(d.T(), 2, d.fakeWarehouse.GetTableCallCount())
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_QueryErrorOnSecondDate() {
	d.fakeWarehouse.QueryStub = nil
	d.fakeWarehouse.QueryReturnsOnCall(0, jobs.Handle{ID: "job_1", Location: "US"}, nil)
	d.fakeWarehouse.QueryReturnsOnCall(1, jobs.Handle{}, fmt.Errorf("quota exceeded"))

	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), defaultArgs())
	assert.ErrorContains(d.T(), err, `failed to submit dedupe job for "ltv-modeling-user.ltv.ltv_20200102": quota exceeded`)
	assert.Nil(d.T(), handles)
	assert.Equal(d.T(), 2, d.fakeWarehouse.QueryCallCount())
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_InvalidDates() {
	args := defaultArgs()
	args.StartDate = "yesterday"

	_, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), args)
	assert.ErrorContains(d.T(), err, "invalid start date")
	assert.Zero(d.T(), d.fakeWarehouse.GetTableCallCount())
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_DryRun() {
	args := defaultArgs()
	args.DryRun = true

	handles, err := d.orchestrator.RemoveDuplicatesForRange(context.Background(), args)
	assert.NoError(d.T(), err)
	assert.Empty(d.T(), handles)
	assert.Zero(d.T(), d.fakeWarehouse.QueryCallCount())
	assert.Equal(d.T(), 2, d.fakeWarehouse.GetTableCallCount())

	// Dry runs still fail on missing tables.
	d.setMissingTables("ltv_20200102")
	_, err = d.orchestrator.RemoveDuplicatesForRange(context.Background(), args)
	assert.ErrorIs(d.T(), err, bigquery.ErrTableNotFound)
}

func (d *DedupeTestSuite) TestRemoveDuplicatesForRange_Paced() {
	orchestrator := NewOrchestrator(d.fakeWarehouse, d.fakeMetrics, 1000)
	handles, err := orchestrator.RemoveDuplicatesForRange(context.Background(), defaultArgs())
	assert.NoError(d.T(), err)
	assert.Len(d.T(), handles, 2)

	// A cancelled context stops the limiter from handing out more slots.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fakeWarehouse := &mocks.FakeWarehouse{}
	_, err = NewOrchestrator(fakeWarehouse, d.fakeMetrics, 0.001).RemoveDuplicatesForRange(ctx, defaultArgs())
	assert.ErrorContains(d.T(), err, "failed to wait for submission slot")
	assert.Zero(d.T(), fakeWarehouse.QueryCallCount())
}
