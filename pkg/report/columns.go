package report

// Column names of the HR dataset, exact and case-sensitive.
const (
	ColDepartment       = "Department"
	ColSex              = "Sex"
	ColPerformanceScore = "PerformanceScore"
	ColPerfScoreID      = "PerfScoreID"
	ColSalary           = "Salary"
	ColEngagement       = "EngagementSurvey"
	ColEmpSatisfaction  = "EmpSatisfaction"
	ColSpecialProjects  = "SpecialProjectsCount"
	ColDaysLate         = "DaysLateLast30"
	ColAbsences         = "Absences"
	ColDOB              = "DOB"
	ColDateOfHire       = "DateofHire"
	ColDateOfTerm       = "DateofTermination"
	ColLastReview       = "LastPerformanceReview_Date"
)

// NotClassified is the sentinel filled into missing PerformanceScore
// cells; downstream counts and plots treat it as a first-class
// category.
const NotClassified = "Not Classified"

// NumericColumns are the columns summarized by Describe and the
// correlation heatmap, in report order.
var NumericColumns = []string{
	ColPerfScoreID,
	ColSalary,
	ColEngagement,
	ColEmpSatisfaction,
	ColSpecialProjects,
	ColDaysLate,
	ColAbsences,
}

// DateColumns are coerced to calendar dates at load time.
var DateColumns = []string{
	ColDOB,
	ColDateOfHire,
	ColDateOfTerm,
	ColLastReview,
}

// RequiredColumns must all be present in the input; the run aborts
// otherwise.
var RequiredColumns = func() []string {
	cols := []string{ColDepartment, ColSex, ColPerformanceScore}
	cols = append(cols, NumericColumns...)
	cols = append(cols, DateColumns...)
	return cols
}()

// OutlierColumns get the interquartile-range outlier report.
var OutlierColumns = []string{ColSalary, ColAbsences}
