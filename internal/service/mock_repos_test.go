package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
)

// newTestRepo 用全套内存 mock 组装 Repository 聚合
func newTestRepo() (*repository.Repository, *testMocks) {
	m := &testMocks{
		user:         newMockUserRepo(),
		class:        newMockClassRepo(),
		subject:      newMockSubjectRepo(),
		teacher:      newMockTeacherRepo(),
		student:      newMockStudentRepo(),
		assignment:   newMockAssignmentRepo(),
		attendance:   newMockAttendanceRepo(),
		mark:         newMockMarkRepo(),
		fee:          newMockFeeRepo(),
		leave:        newMockLeaveRepo(),
		announcement: newMockAnnouncementRepo(),
		lecture:      newMockLectureRepo(),
		qa:           newMockQARepo(),
	}
	repo := &repository.Repository{
		User:         m.user,
		Class:        m.class,
		Subject:      m.subject,
		Teacher:      m.teacher,
		Student:      m.student,
		Assignment:   m.assignment,
		Attendance:   m.attendance,
		Mark:         m.mark,
		Fee:          m.fee,
		Leave:        m.leave,
		Announcement: m.announcement,
		Lecture:      m.lecture,
		QA:           m.qa,
	}
	return repo, m
}

type testMocks struct {
	user         *mockUserRepo
	class        *mockClassRepo
	subject      *mockSubjectRepo
	teacher      *mockTeacherRepo
	student      *mockStudentRepo
	assignment   *mockAssignmentRepo
	attendance   *mockAttendanceRepo
	mark         *mockMarkRepo
	fee          *mockFeeRepo
	leave        *mockLeaveRepo
	announcement *mockAnnouncementRepo
	lecture      *mockLectureRepo
	qa           *mockQARepo
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes map[string]*model.Class
	seq     int
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.Class)}
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	if class.ClassID == "" {
		m.seq++
		class.ClassID = fmt.Sprintf("class-%d", m.seq)
	}
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) Update(_ context.Context, class *model.Class) error {
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id string) error {
	delete(m.classes, id)
	return nil
}

func (m *mockClassRepo) List(_ context.Context, offset, limit int) ([]model.Class, int64, error) {
	var all []model.Class
	for _, c := range m.classes {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockClassRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.classes)), nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
	seq      int
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if subject.SubjectID == "" {
		m.seq++
		subject.SubjectID = fmt.Sprintf("subject-%d", m.seq)
	}
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id string) error {
	delete(m.subjects, id)
	return nil
}

func (m *mockSubjectRepo) List(_ context.Context, offset, limit int) ([]model.Subject, int64, error) {
	var all []model.Subject
	for _, s := range m.subjects {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockSubjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.subjects)), nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[string]*model.Teacher
	seq      int
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]*model.Teacher)}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.TeacherID == "" {
		m.seq++
		teacher.TeacherID = fmt.Sprintf("teacher-%d", m.seq)
	}
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByUserID(_ context.Context, userID string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string) error {
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) List(_ context.Context, _ string, offset, limit int) ([]model.Teacher, int64, error) {
	var all []model.Teacher
	for _, t := range m.teachers {
		all = append(all, *t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].FullName < all[j].FullName })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockTeacherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.teachers)), nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("student-%d", m.seq)
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID string) (*model.Student, error) {
	for _, s := range m.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) List(_ context.Context, classID, _ string, offset, limit int) ([]model.Student, int64, error) {
	var all []model.Student
	for _, s := range m.students {
		if classID != "" && (s.ClassID == nil || *s.ClassID != classID) {
			continue
		}
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].FullName < all[j].FullName })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockStudentRepo) ListByClass(_ context.Context, classID string) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		if s.ClassID != nil && *s.ClassID == classID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FullName < result[j].FullName })
	return result, nil
}

func (m *mockStudentRepo) CountByClass(_ context.Context, classID string) (int64, error) {
	var n int64
	for _, s := range m.students {
		if s.ClassID != nil && *s.ClassID == classID {
			n++
		}
	}
	return n, nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.SubjectAssignment
	seq         int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.SubjectAssignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.SubjectAssignment) error {
	for _, existing := range m.assignments {
		if existing.TeacherID == a.TeacherID && existing.SubjectID == a.SubjectID && existing.ClassID == a.ClassID {
			return gorm.ErrDuplicatedKey
		}
	}
	if a.AssignmentID == "" {
		m.seq++
		a.AssignmentID = fmt.Sprintf("assignment-%d", m.seq)
	}
	m.assignments[a.AssignmentID] = a
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.SubjectAssignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) error {
	delete(m.assignments, id)
	return nil
}

func (m *mockAssignmentRepo) List(_ context.Context, filter repository.AssignmentFilter, offset, limit int) ([]model.SubjectAssignment, int64, error) {
	var all []model.SubjectAssignment
	for _, a := range m.assignments {
		if filter.TeacherID != "" && a.TeacherID != filter.TeacherID {
			continue
		}
		if filter.SubjectID != "" && a.SubjectID != filter.SubjectID {
			continue
		}
		if filter.ClassID != "" && a.ClassID != filter.ClassID {
			continue
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].AssignmentID < all[j].AssignmentID })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockAssignmentRepo) ListByTeacher(_ context.Context, teacherID string) ([]model.SubjectAssignment, error) {
	var result []model.SubjectAssignment
	for _, a := range m.assignments {
		if a.TeacherID == teacherID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AssignmentID < result[j].AssignmentID })
	return result, nil
}

func (m *mockAssignmentRepo) ExistsForTeacherSubjectClass(_ context.Context, teacherID, subjectID, classID string) (bool, error) {
	for _, a := range m.assignments {
		if a.TeacherID == teacherID && a.SubjectID == subjectID && a.ClassID == classID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAssignmentRepo) CountByTeacher(_ context.Context, teacherID string) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.TeacherID == teacherID {
			n++
		}
	}
	return n, nil
}

func (m *mockAssignmentRepo) CountBySubject(_ context.Context, subjectID string) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.SubjectID == subjectID {
			n++
		}
	}
	return n, nil
}

func (m *mockAssignmentRepo) CountByClass(_ context.Context, classID string) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.ClassID == classID {
			n++
		}
	}
	return n, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance
	// classOf 学生 → 班级，供按班级过滤使用
	classOf map[string]string
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records: make(map[string]*model.Attendance),
		classOf: make(map[string]string),
	}
}

func attendanceKey(studentID, subjectID string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", studentID, subjectID, date.Format("2006-01-02"))
}

func (m *mockAttendanceRepo) Create(_ context.Context, a *model.Attendance) error {
	key := attendanceKey(a.StudentID, a.SubjectID, a.Date)
	for _, existing := range m.records {
		if attendanceKey(existing.StudentID, existing.SubjectID, existing.Date) == key {
			return gorm.ErrDuplicatedKey
		}
	}
	if a.AttendanceID == "" {
		m.seq++
		a.AttendanceID = fmt.Sprintf("attendance-%d", m.seq)
	}
	m.records[a.AttendanceID] = a
	return nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, a *model.Attendance) error {
	m.records[a.AttendanceID] = a
	return nil
}

func (m *mockAttendanceRepo) GetByKey(_ context.Context, studentID, subjectID string, date time.Time) (*model.Attendance, error) {
	key := attendanceKey(studentID, subjectID, date)
	for _, a := range m.records {
		if attendanceKey(a.StudentID, a.SubjectID, a.Date) == key {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) List(_ context.Context, filter repository.AttendanceFilter, offset, limit int) ([]model.Attendance, int64, error) {
	var all []model.Attendance
	for _, a := range m.records {
		if filter.StudentID != "" && a.StudentID != filter.StudentID {
			continue
		}
		if filter.SubjectID != "" && a.SubjectID != filter.SubjectID {
			continue
		}
		if filter.ClassID != "" && m.classOf[a.StudentID] != filter.ClassID {
			continue
		}
		if filter.DateFrom != nil && a.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && a.Date.After(*filter.DateTo) {
			continue
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockAttendanceRepo) ListByClassAndRange(_ context.Context, classID, subjectID string, from, to time.Time) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.records {
		if a.SubjectID != subjectID || m.classOf[a.StudentID] != classID {
			continue
		}
		if a.Date.Before(from) || a.Date.After(to) {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockAttendanceRepo) Summarize(_ context.Context, studentID string) (*repository.AttendanceSummary, error) {
	summary := &repository.AttendanceSummary{}
	for _, a := range m.records {
		if a.StudentID != studentID {
			continue
		}
		summary.Total++
		switch a.Status {
		case model.AttendancePresent:
			summary.Present++
		case model.AttendanceAbsent:
			summary.Absent++
		case model.AttendanceLate:
			summary.Late++
		}
	}
	return summary, nil
}

func (m *mockAttendanceRepo) CountByStudent(_ context.Context, studentID string) (int64, error) {
	var n int64
	for _, a := range m.records {
		if a.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

func (m *mockAttendanceRepo) CountByTeacher(_ context.Context, teacherID string) (int64, error) {
	var n int64
	for _, a := range m.records {
		if a.TeacherID == teacherID {
			n++
		}
	}
	return n, nil
}

func (m *mockAttendanceRepo) CountBySubject(_ context.Context, subjectID string) (int64, error) {
	var n int64
	for _, a := range m.records {
		if a.SubjectID == subjectID {
			n++
		}
	}
	return n, nil
}

// ── Mock MarkRepository ──

type mockMarkRepo struct {
	marks map[string]*model.Mark
	seq   int
}

func newMockMarkRepo() *mockMarkRepo {
	return &mockMarkRepo{marks: make(map[string]*model.Mark)}
}

func (m *mockMarkRepo) BatchCreate(_ context.Context, marks []model.Mark) error {
	for i := range marks {
		if marks[i].MarkID == "" {
			m.seq++
			marks[i].MarkID = fmt.Sprintf("mark-%d", m.seq)
		}
		copied := marks[i]
		m.marks[copied.MarkID] = &copied
	}
	return nil
}

func (m *mockMarkRepo) List(_ context.Context, filter repository.MarkFilter, offset, limit int) ([]model.Mark, int64, error) {
	var all []model.Mark
	for _, mk := range m.marks {
		if filter.StudentID != "" && mk.StudentID != filter.StudentID {
			continue
		}
		if filter.SubjectID != "" && mk.SubjectID != filter.SubjectID {
			continue
		}
		if filter.ExamType != "" && mk.ExamType != filter.ExamType {
			continue
		}
		all = append(all, *mk)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].MarkID < all[j].MarkID })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockMarkRepo) ListRecentByStudent(_ context.Context, studentID string, limit int) ([]model.Mark, error) {
	var result []model.Mark
	for _, mk := range m.marks {
		if mk.StudentID == studentID {
			result = append(result, *mk)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockMarkRepo) CountByStudent(_ context.Context, studentID string) (int64, error) {
	var n int64
	for _, mk := range m.marks {
		if mk.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

func (m *mockMarkRepo) CountBySubject(_ context.Context, subjectID string) (int64, error) {
	var n int64
	for _, mk := range m.marks {
		if mk.SubjectID == subjectID {
			n++
		}
	}
	return n, nil
}

func (m *mockMarkRepo) CountByTeacher(_ context.Context, teacherID string) (int64, error) {
	var n int64
	for _, mk := range m.marks {
		if mk.TeacherID == teacherID {
			n++
		}
	}
	return n, nil
}

// ── Mock FeeVoucherRepository ──

type mockFeeRepo struct {
	vouchers map[string]*model.FeeVoucher
	seq      int
}

func newMockFeeRepo() *mockFeeRepo {
	return &mockFeeRepo{vouchers: make(map[string]*model.FeeVoucher)}
}

func (m *mockFeeRepo) Create(_ context.Context, v *model.FeeVoucher) error {
	if v.VoucherID == "" {
		m.seq++
		v.VoucherID = fmt.Sprintf("voucher-%d", m.seq)
	}
	m.vouchers[v.VoucherID] = v
	return nil
}

func (m *mockFeeRepo) GetByID(_ context.Context, id string) (*model.FeeVoucher, error) {
	if v, ok := m.vouchers[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFeeRepo) Update(_ context.Context, v *model.FeeVoucher) error {
	m.vouchers[v.VoucherID] = v
	return nil
}

func (m *mockFeeRepo) List(_ context.Context, filter repository.FeeFilter, offset, limit int) ([]model.FeeVoucher, int64, error) {
	var all []model.FeeVoucher
	for _, v := range m.vouchers {
		if filter.StudentID != "" && v.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if filter.Year != 0 && v.Year != filter.Year {
			continue
		}
		all = append(all, *v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].VoucherID < all[j].VoucherID })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockFeeRepo) ListPendingByStudent(_ context.Context, studentID string) ([]model.FeeVoucher, error) {
	var result []model.FeeVoucher
	for _, v := range m.vouchers {
		if v.StudentID == studentID && (v.Status == model.FeePending || v.Status == model.FeeOverdue) {
			result = append(result, *v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].VoucherID < result[j].VoucherID })
	return result, nil
}

func (m *mockFeeRepo) SumAmountByStatus(_ context.Context, status string) (float64, error) {
	var sum float64
	for _, v := range m.vouchers {
		if v.Status == status {
			sum += v.Amount
		}
	}
	return sum, nil
}

func (m *mockFeeRepo) SumPaidInYear(_ context.Context, year int) (float64, error) {
	var sum float64
	for _, v := range m.vouchers {
		if v.Status == model.FeePaid && v.Year == year {
			sum += v.Amount
		}
	}
	return sum, nil
}

func (m *mockFeeRepo) MarkOverdueIssuedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for _, v := range m.vouchers {
		if v.Status == model.FeePending && v.IssuedDate.Before(cutoff) {
			v.Status = model.FeeOverdue
			n++
		}
	}
	return n, nil
}

func (m *mockFeeRepo) CountByStudent(_ context.Context, studentID string) (int64, error) {
	var n int64
	for _, v := range m.vouchers {
		if v.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

// ── Mock LeaveRepository ──

type mockLeaveRepo struct {
	leaves map[string]*model.LeaveApplication
	seq    int
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{leaves: make(map[string]*model.LeaveApplication)}
}

func (m *mockLeaveRepo) Create(_ context.Context, l *model.LeaveApplication) error {
	if l.ApplicationID == "" {
		m.seq++
		l.ApplicationID = fmt.Sprintf("leave-%d", m.seq)
	}
	m.leaves[l.ApplicationID] = l
	return nil
}

func (m *mockLeaveRepo) GetByID(_ context.Context, id string) (*model.LeaveApplication, error) {
	if l, ok := m.leaves[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeaveRepo) Update(_ context.Context, l *model.LeaveApplication) error {
	m.leaves[l.ApplicationID] = l
	return nil
}

func (m *mockLeaveRepo) List(_ context.Context, filter repository.LeaveFilter, offset, limit int) ([]model.LeaveApplication, int64, error) {
	var all []model.LeaveApplication
	for _, l := range m.leaves {
		if filter.StudentID != "" && l.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		all = append(all, *l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ApplicationID < all[j].ApplicationID })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockLeaveRepo) ListApprovedByStudent(_ context.Context, studentID string) ([]model.LeaveApplication, error) {
	var result []model.LeaveApplication
	for _, l := range m.leaves {
		if l.StudentID == studentID && l.Status == model.LeaveApproved {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FromDate.Before(result[j].FromDate) })
	return result, nil
}

func (m *mockLeaveRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, l := range m.leaves {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockLeaveRepo) CountByStudent(_ context.Context, studentID string) (int64, error) {
	var n int64
	for _, l := range m.leaves {
		if l.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

func (m *mockLeaveRepo) CountByStudentAndStatus(_ context.Context, studentID, status string) (int64, error) {
	var n int64
	for _, l := range m.leaves {
		if l.StudentID == studentID && l.Status == status {
			n++
		}
	}
	return n, nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	announcements map[string]*model.Announcement
	seq           int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{announcements: make(map[string]*model.Announcement)}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if a.AnnouncementID == "" {
		m.seq++
		a.AnnouncementID = fmt.Sprintf("announcement-%d", m.seq)
	}
	a.CreatedAt = time.Now()
	m.announcements[a.AnnouncementID] = a
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	if a, ok := m.announcements[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) error {
	delete(m.announcements, id)
	return nil
}

func (m *mockAnnouncementRepo) CountByTeacher(_ context.Context, teacherID string) (int64, error) {
	var n int64
	for _, a := range m.announcements {
		if a.TeacherID == teacherID {
			n++
		}
	}
	return n, nil
}

func (m *mockAnnouncementRepo) matchAudience(a *model.Announcement, audiences []string) bool {
	if len(audiences) == 0 {
		return true
	}
	for _, aud := range audiences {
		if a.Audience == aud {
			return true
		}
	}
	return false
}

func (m *mockAnnouncementRepo) ListForAudiences(_ context.Context, audiences []string, offset, limit int) ([]model.Announcement, int64, error) {
	var all []model.Announcement
	for _, a := range m.announcements {
		if m.matchAudience(a, audiences) {
			all = append(all, *a)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].AnnouncementID < all[j].AnnouncementID })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockAnnouncementRepo) ListRecentForAudiences(_ context.Context, audiences []string, limit int) ([]model.Announcement, error) {
	var result []model.Announcement
	for _, a := range m.announcements {
		if m.matchAudience(a, audiences) {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ── Mock LectureMaterialRepository ──

type mockLectureRepo struct {
	materials map[string]*model.LectureMaterial
	seq       int
}

func newMockLectureRepo() *mockLectureRepo {
	return &mockLectureRepo{materials: make(map[string]*model.LectureMaterial)}
}

func (m *mockLectureRepo) Create(_ context.Context, mat *model.LectureMaterial) error {
	if mat.MaterialID == "" {
		m.seq++
		mat.MaterialID = fmt.Sprintf("material-%d", m.seq)
	}
	m.materials[mat.MaterialID] = mat
	return nil
}

func (m *mockLectureRepo) GetByID(_ context.Context, id string) (*model.LectureMaterial, error) {
	if mat, ok := m.materials[id]; ok {
		return mat, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLectureRepo) Delete(_ context.Context, id string) error {
	delete(m.materials, id)
	return nil
}

func (m *mockLectureRepo) CountByTeacher(_ context.Context, teacherID string) (int64, error) {
	var n int64
	for _, mat := range m.materials {
		if mat.TeacherID == teacherID {
			n++
		}
	}
	return n, nil
}

func (m *mockLectureRepo) CountBySubject(_ context.Context, subjectID string) (int64, error) {
	var n int64
	for _, mat := range m.materials {
		if mat.SubjectID == subjectID {
			n++
		}
	}
	return n, nil
}

func (m *mockLectureRepo) List(_ context.Context, subjectID string, offset, limit int) ([]model.LectureMaterial, int64, error) {
	var all []model.LectureMaterial
	for _, mat := range m.materials {
		if subjectID != "" && mat.SubjectID != subjectID {
			continue
		}
		all = append(all, *mat)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].MaterialID < all[j].MaterialID })
	return paginate(all, offset, limit), int64(len(all)), nil
}

// ── Mock QARepository ──

type mockQARepo struct {
	questions map[string]*model.QAQuestion
	answers   map[string]*model.QAAnswer
	seq       int
}

func newMockQARepo() *mockQARepo {
	return &mockQARepo{
		questions: make(map[string]*model.QAQuestion),
		answers:   make(map[string]*model.QAAnswer),
	}
}

func (m *mockQARepo) CreateQuestion(_ context.Context, q *model.QAQuestion) error {
	if q.QuestionID == "" {
		m.seq++
		q.QuestionID = fmt.Sprintf("question-%d", m.seq)
	}
	q.AskedAt = time.Now()
	m.questions[q.QuestionID] = q
	return nil
}

func (m *mockQARepo) GetQuestionByID(_ context.Context, id string) (*model.QAQuestion, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *q
	copied.Answers = m.answersFor(id)
	return &copied, nil
}

func (m *mockQARepo) answersFor(questionID string) []model.QAAnswer {
	var result []model.QAAnswer
	for _, a := range m.answers {
		if a.QuestionID == questionID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AnswerID < result[j].AnswerID })
	return result
}

func (m *mockQARepo) ListQuestions(_ context.Context, filter repository.QuestionFilter, offset, limit int) ([]model.QAQuestion, int64, error) {
	var all []model.QAQuestion
	for id, q := range m.questions {
		if filter.StudentID != "" && (q.StudentID == nil || *q.StudentID != filter.StudentID) {
			continue
		}
		if filter.SubjectID != "" && q.SubjectID != filter.SubjectID {
			continue
		}
		answers := m.answersFor(id)
		if filter.Unanswered && len(answers) > 0 {
			continue
		}
		copied := *q
		copied.Answers = answers
		all = append(all, copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].QuestionID < all[j].QuestionID })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockQARepo) CreateAnswer(_ context.Context, a *model.QAAnswer) error {
	if _, ok := m.questions[a.QuestionID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if a.AnswerID == "" {
		m.seq++
		a.AnswerID = fmt.Sprintf("answer-%d", m.seq)
	}
	a.AnsweredAt = time.Now()
	m.answers[a.AnswerID] = a
	return nil
}

func (m *mockQARepo) CountUnanswered(_ context.Context) (int64, error) {
	var n int64
	for id := range m.questions {
		if len(m.answersFor(id)) == 0 {
			n++
		}
	}
	return n, nil
}

func (m *mockQARepo) CountQuestionsByStudent(_ context.Context, studentID string) (int64, error) {
	var n int64
	for _, q := range m.questions {
		if q.StudentID != nil && *q.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

func (m *mockQARepo) CountQuestionsBySubject(_ context.Context, subjectID string) (int64, error) {
	var n int64
	for _, q := range m.questions {
		if q.SubjectID == subjectID {
			n++
		}
	}
	return n, nil
}

func (m *mockQARepo) CountAnswersByTeacher(_ context.Context, teacherID string) (int64, error) {
	var n int64
	for _, a := range m.answers {
		if a.TeacherID == teacherID {
			n++
		}
	}
	return n, nil
}
