// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: exambank/v1/exambank.proto

package exambankv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	RawText       string                 `protobuf:"bytes,2,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessDocumentRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobStatusResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ProcessingJob struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	JobId              string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Filename           string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Status             string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Progress           int32                  `protobuf:"varint,4,opt,name=progress,proto3" json:"progress,omitempty"`
	TotalQuestions     int32                  `protobuf:"varint,5,opt,name=total_questions,json=totalQuestions,proto3" json:"total_questions,omitempty"`
	ProcessedQuestions int32                  `protobuf:"varint,6,opt,name=processed_questions,json=processedQuestions,proto3" json:"processed_questions,omitempty"`
	Errors             []*BlockError          `protobuf:"bytes,7,rep,name=errors,proto3" json:"errors,omitempty"`
	Results            []*Question            `protobuf:"bytes,8,rep,name=results,proto3" json:"results,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt          string                 `protobuf:"bytes,10,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt         string                 `protobuf:"bytes,11,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	QuestionIds        []string               `protobuf:"bytes,12,rep,name=question_ids,json=questionIds,proto3" json:"question_ids,omitempty"`
	ImportErrors       []*ImportError         `protobuf:"bytes,13,rep,name=import_errors,json=importErrors,proto3" json:"import_errors,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ProcessingJob) Reset() {
	*x = ProcessingJob{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingJob) ProtoMessage() {}

func (x *ProcessingJob) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingJob.ProtoReflect.Descriptor instead.
func (*ProcessingJob) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessingJob) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ProcessingJob) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessingJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessingJob) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *ProcessingJob) GetTotalQuestions() int32 {
	if x != nil {
		return x.TotalQuestions
	}
	return 0
}

func (x *ProcessingJob) GetProcessedQuestions() int32 {
	if x != nil {
		return x.ProcessedQuestions
	}
	return 0
}

func (x *ProcessingJob) GetErrors() []*BlockError {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *ProcessingJob) GetResults() []*Question {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *ProcessingJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ProcessingJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ProcessingJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *ProcessingJob) GetQuestionIds() []string {
	if x != nil {
		return x.QuestionIds
	}
	return nil
}

func (x *ProcessingJob) GetImportErrors() []*ImportError {
	if x != nil {
		return x.ImportErrors
	}
	return nil
}

type BlockError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BlockIndex    int32                  `protobuf:"varint,1,opt,name=block_index,json=blockIndex,proto3" json:"block_index,omitempty"`
	Error         string                 `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BlockError) Reset() {
	*x = BlockError{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BlockError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BlockError) ProtoMessage() {}

func (x *BlockError) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BlockError.ProtoReflect.Descriptor instead.
func (*BlockError) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{5}
}

func (x *BlockError) GetBlockIndex() int32 {
	if x != nil {
		return x.BlockIndex
	}
	return 0
}

func (x *BlockError) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type QuestionOption struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	IsCorrect     bool                   `protobuf:"varint,2,opt,name=is_correct,json=isCorrect,proto3" json:"is_correct,omitempty"`
	Order         int32                  `protobuf:"varint,3,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuestionOption) Reset() {
	*x = QuestionOption{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuestionOption) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuestionOption) ProtoMessage() {}

func (x *QuestionOption) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuestionOption.ProtoReflect.Descriptor instead.
func (*QuestionOption) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{6}
}

func (x *QuestionOption) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *QuestionOption) GetIsCorrect() bool {
	if x != nil {
		return x.IsCorrect
	}
	return false
}

func (x *QuestionOption) GetOrder() int32 {
	if x != nil {
		return x.Order
	}
	return 0
}

type Question struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Stem           string                 `protobuf:"bytes,2,opt,name=stem,proto3" json:"stem,omitempty"`
	Explanation    string                 `protobuf:"bytes,3,opt,name=explanation,proto3" json:"explanation,omitempty"`
	Difficulty     string                 `protobuf:"bytes,4,opt,name=difficulty,proto3" json:"difficulty,omitempty"`
	YearAppeared   int32                  `protobuf:"varint,5,opt,name=year_appeared,json=yearAppeared,proto3" json:"year_appeared,omitempty"`
	IsPreviousYear bool                   `protobuf:"varint,6,opt,name=is_previous_year,json=isPreviousYear,proto3" json:"is_previous_year,omitempty"`
	Subject        string                 `protobuf:"bytes,7,opt,name=subject,proto3" json:"subject,omitempty"`
	SubjectId      string                 `protobuf:"bytes,8,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	Options        []*QuestionOption      `protobuf:"bytes,9,rep,name=options,proto3" json:"options,omitempty"`
	TagNames       []string               `protobuf:"bytes,10,rep,name=tag_names,json=tagNames,proto3" json:"tag_names,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Question) Reset() {
	*x = Question{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Question) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Question) ProtoMessage() {}

func (x *Question) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Question.ProtoReflect.Descriptor instead.
func (*Question) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{7}
}

func (x *Question) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Question) GetStem() string {
	if x != nil {
		return x.Stem
	}
	return ""
}

func (x *Question) GetExplanation() string {
	if x != nil {
		return x.Explanation
	}
	return ""
}

func (x *Question) GetDifficulty() string {
	if x != nil {
		return x.Difficulty
	}
	return ""
}

func (x *Question) GetYearAppeared() int32 {
	if x != nil {
		return x.YearAppeared
	}
	return 0
}

func (x *Question) GetIsPreviousYear() bool {
	if x != nil {
		return x.IsPreviousYear
	}
	return false
}

func (x *Question) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *Question) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

func (x *Question) GetOptions() []*QuestionOption {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *Question) GetTagNames() []string {
	if x != nil {
		return x.TagNames
	}
	return nil
}

func (x *Question) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Question) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ImportQuestionsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Questions []*Question            `protobuf:"bytes,1,rep,name=questions,proto3" json:"questions,omitempty"`
	// Alternative payload: a JSON array in the extraction output shape,
	// validated against the batch schema before decoding. Used when the
	// caller already holds pipeline output verbatim.
	QuestionsJson []byte `protobuf:"bytes,2,opt,name=questions_json,json=questionsJson,proto3" json:"questions_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportQuestionsRequest) Reset() {
	*x = ImportQuestionsRequest{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportQuestionsRequest) ProtoMessage() {}

func (x *ImportQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ImportQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{8}
}

func (x *ImportQuestionsRequest) GetQuestions() []*Question {
	if x != nil {
		return x.Questions
	}
	return nil
}

func (x *ImportQuestionsRequest) GetQuestionsJson() []byte {
	if x != nil {
		return x.QuestionsJson
	}
	return nil
}

type ImportError struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Index int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Error string                 `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	// the rejected record, echoed back so the caller can correct and resubmit
	Question      *Question `protobuf:"bytes,3,opt,name=question,proto3" json:"question,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportError) Reset() {
	*x = ImportError{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportError) ProtoMessage() {}

func (x *ImportError) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportError.ProtoReflect.Descriptor instead.
func (*ImportError) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{9}
}

func (x *ImportError) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *ImportError) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ImportError) GetQuestion() *Question {
	if x != nil {
		return x.Question
	}
	return nil
}

type ImportQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Successful    int32                  `protobuf:"varint,2,opt,name=successful,proto3" json:"successful,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	Errors        []*ImportError         `protobuf:"bytes,4,rep,name=errors,proto3" json:"errors,omitempty"`
	QuestionIds   []string               `protobuf:"bytes,5,rep,name=question_ids,json=questionIds,proto3" json:"question_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportQuestionsResponse) Reset() {
	*x = ImportQuestionsResponse{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportQuestionsResponse) ProtoMessage() {}

func (x *ImportQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ImportQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{10}
}

func (x *ImportQuestionsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ImportQuestionsResponse) GetSuccessful() int32 {
	if x != nil {
		return x.Successful
	}
	return 0
}

func (x *ImportQuestionsResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ImportQuestionsResponse) GetErrors() []*ImportError {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *ImportQuestionsResponse) GetQuestionIds() []string {
	if x != nil {
		return x.QuestionIds
	}
	return nil
}

type ValidateQuestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Questions     []*Question            `protobuf:"bytes,1,rep,name=questions,proto3" json:"questions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateQuestionsRequest) Reset() {
	*x = ValidateQuestionsRequest{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateQuestionsRequest) ProtoMessage() {}

func (x *ValidateQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ValidateQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{11}
}

func (x *ValidateQuestionsRequest) GetQuestions() []*Question {
	if x != nil {
		return x.Questions
	}
	return nil
}

type ValidationIssue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Errors        []string               `protobuf:"bytes,2,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationIssue) Reset() {
	*x = ValidationIssue{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationIssue) ProtoMessage() {}

func (x *ValidationIssue) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationIssue.ProtoReflect.Descriptor instead.
func (*ValidationIssue) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{12}
}

func (x *ValidationIssue) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *ValidationIssue) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

type ValidateQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Valid         int32                  `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	Invalid       int32                  `protobuf:"varint,2,opt,name=invalid,proto3" json:"invalid,omitempty"`
	Errors        []*ValidationIssue     `protobuf:"bytes,3,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateQuestionsResponse) Reset() {
	*x = ValidateQuestionsResponse{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateQuestionsResponse) ProtoMessage() {}

func (x *ValidateQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ValidateQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{13}
}

func (x *ValidateQuestionsResponse) GetValid() int32 {
	if x != nil {
		return x.Valid
	}
	return 0
}

func (x *ValidateQuestionsResponse) GetInvalid() int32 {
	if x != nil {
		return x.Invalid
	}
	return 0
}

func (x *ValidateQuestionsResponse) GetErrors() []*ValidationIssue {
	if x != nil {
		return x.Errors
	}
	return nil
}

type ListQuestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SubjectId     string                 `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	Difficulty    string                 `protobuf:"bytes,2,opt,name=difficulty,proto3" json:"difficulty,omitempty"`
	Year          int32                  `protobuf:"varint,3,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuestionsRequest) Reset() {
	*x = ListQuestionsRequest{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuestionsRequest) ProtoMessage() {}

func (x *ListQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ListQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{14}
}

func (x *ListQuestionsRequest) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

func (x *ListQuestionsRequest) GetDifficulty() string {
	if x != nil {
		return x.Difficulty
	}
	return ""
}

func (x *ListQuestionsRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ListQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Questions     []*Question            `protobuf:"bytes,1,rep,name=questions,proto3" json:"questions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuestionsResponse) Reset() {
	*x = ListQuestionsResponse{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuestionsResponse) ProtoMessage() {}

func (x *ListQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ListQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{15}
}

func (x *ListQuestionsResponse) GetQuestions() []*Question {
	if x != nil {
		return x.Questions
	}
	return nil
}

type ExportQuestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SubjectId     string                 `protobuf:"bytes,1,opt,name=subject_id,json=subjectId,proto3" json:"subject_id,omitempty"`
	Difficulty    string                 `protobuf:"bytes,2,opt,name=difficulty,proto3" json:"difficulty,omitempty"`
	Year          int32                  `protobuf:"varint,3,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportQuestionsRequest) Reset() {
	*x = ExportQuestionsRequest{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportQuestionsRequest) ProtoMessage() {}

func (x *ExportQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ExportQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{16}
}

func (x *ExportQuestionsRequest) GetSubjectId() string {
	if x != nil {
		return x.SubjectId
	}
	return ""
}

func (x *ExportQuestionsRequest) GetDifficulty() string {
	if x != nil {
		return x.Difficulty
	}
	return ""
}

func (x *ExportQuestionsRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ExportQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportQuestionsResponse) Reset() {
	*x = ExportQuestionsResponse{}
	mi := &file_exambank_v1_exambank_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportQuestionsResponse) ProtoMessage() {}

func (x *ExportQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exambank_v1_exambank_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ExportQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_exambank_v1_exambank_proto_rawDescGZIP(), []int{17}
}

func (x *ExportQuestionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_exambank_v1_exambank_proto protoreflect.FileDescriptor

const file_exambank_v1_exambank_proto_rawDesc = "" +
	"\n" +
	"\x1aexambank/v1/exambank.proto\x12\vexambank.v1\"O\n" +
	"\x16ProcessDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x19\n" +
	"\braw_text\x18\x02 \x01(\tR\arawText\"H\n" +
	"\x17ProcessDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"D\n" +
	"\x14GetJobStatusResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.exambank.v1.ProcessingJobR\x03job\"\xf9\x03\n" +
	"\rProcessingJob\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x04 \x01(\x05R\bprogress\x12'\n" +
	"\x0ftotal_questions\x18\x05 \x01(\x05R\x0etotalQuestions\x12/\n" +
	"\x13processed_questions\x18\x06 \x01(\x05R\x12processedQuestions\x12/\n" +
	"\x06errors\x18\a \x03(\v2\x17.exambank.v1.BlockErrorR\x06errors\x12/\n" +
	"\aresults\x18\b \x03(\v2\x15.exambank.v1.QuestionR\aresults\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\n" +
	" \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\v \x01(\tR\n" +
	"finishedAt\x12!\n" +
	"\fquestion_ids\x18\f \x03(\tR\vquestionIds\x12=\n" +
	"\rimport_errors\x18\r \x03(\v2\x18.exambank.v1.ImportErrorR\fimportErrors\"C\n" +
	"\n" +
	"BlockError\x12\x1f\n" +
	"\vblock_index\x18\x01 \x01(\x05R\n" +
	"blockIndex\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error\"Y\n" +
	"\x0eQuestionOption\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1d\n" +
	"\n" +
	"is_correct\x18\x02 \x01(\bR\tisCorrect\x12\x14\n" +
	"\x05order\x18\x03 \x01(\x05R\x05order\"\x8a\x03\n" +
	"\bQuestion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04stem\x18\x02 \x01(\tR\x04stem\x12 \n" +
	"\vexplanation\x18\x03 \x01(\tR\vexplanation\x12\x1e\n" +
	"\n" +
	"difficulty\x18\x04 \x01(\tR\n" +
	"difficulty\x12#\n" +
	"\ryear_appeared\x18\x05 \x01(\x05R\fyearAppeared\x12(\n" +
	"\x10is_previous_year\x18\x06 \x01(\bR\x0eisPreviousYear\x12\x18\n" +
	"\asubject\x18\a \x01(\tR\asubject\x12\x1d\n" +
	"\n" +
	"subject_id\x18\b \x01(\tR\tsubjectId\x125\n" +
	"\aoptions\x18\t \x03(\v2\x1b.exambank.v1.QuestionOptionR\aoptions\x12\x1b\n" +
	"\ttag_names\x18\n" +
	" \x03(\tR\btagNames\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"t\n" +
	"\x16ImportQuestionsRequest\x123\n" +
	"\tquestions\x18\x01 \x03(\v2\x15.exambank.v1.QuestionR\tquestions\x12%\n" +
	"\x0equestions_json\x18\x02 \x01(\fR\rquestionsJson\"l\n" +
	"\vImportError\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error\x121\n" +
	"\bquestion\x18\x03 \x01(\v2\x15.exambank.v1.QuestionR\bquestion\"\xbc\x01\n" +
	"\x17ImportQuestionsResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x1e\n" +
	"\n" +
	"successful\x18\x02 \x01(\x05R\n" +
	"successful\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\x120\n" +
	"\x06errors\x18\x04 \x03(\v2\x18.exambank.v1.ImportErrorR\x06errors\x12!\n" +
	"\fquestion_ids\x18\x05 \x03(\tR\vquestionIds\"O\n" +
	"\x18ValidateQuestionsRequest\x123\n" +
	"\tquestions\x18\x01 \x03(\v2\x15.exambank.v1.QuestionR\tquestions\"?\n" +
	"\x0fValidationIssue\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\x12\x16\n" +
	"\x06errors\x18\x02 \x03(\tR\x06errors\"\x81\x01\n" +
	"\x19ValidateQuestionsResponse\x12\x14\n" +
	"\x05valid\x18\x01 \x01(\x05R\x05valid\x12\x18\n" +
	"\ainvalid\x18\x02 \x01(\x05R\ainvalid\x124\n" +
	"\x06errors\x18\x03 \x03(\v2\x1c.exambank.v1.ValidationIssueR\x06errors\"i\n" +
	"\x14ListQuestionsRequest\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x01 \x01(\tR\tsubjectId\x12\x1e\n" +
	"\n" +
	"difficulty\x18\x02 \x01(\tR\n" +
	"difficulty\x12\x12\n" +
	"\x04year\x18\x03 \x01(\x05R\x04year\"L\n" +
	"\x15ListQuestionsResponse\x123\n" +
	"\tquestions\x18\x01 \x03(\v2\x15.exambank.v1.QuestionR\tquestions\"k\n" +
	"\x16ExportQuestionsRequest\x12\x1d\n" +
	"\n" +
	"subject_id\x18\x01 \x01(\tR\tsubjectId\x12\x1e\n" +
	"\n" +
	"difficulty\x18\x02 \x01(\tR\n" +
	"difficulty\x12\x12\n" +
	"\x04year\x18\x03 \x01(\x05R\x04year\"-\n" +
	"\x17ExportQuestionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc4\x01\n" +
	"\x0fDocumentService\x12\\\n" +
	"\x0fProcessDocument\x12#.exambank.v1.ProcessDocumentRequest\x1a$.exambank.v1.ProcessDocumentResponse\x12S\n" +
	"\fGetJobStatus\x12 .exambank.v1.GetJobStatusRequest\x1a!.exambank.v1.GetJobStatusResponse2\x89\x03\n" +
	"\x0fQuestionService\x12\\\n" +
	"\x0fImportQuestions\x12#.exambank.v1.ImportQuestionsRequest\x1a$.exambank.v1.ImportQuestionsResponse\x12b\n" +
	"\x11ValidateQuestions\x12%.exambank.v1.ValidateQuestionsRequest\x1a&.exambank.v1.ValidateQuestionsResponse\x12V\n" +
	"\rListQuestions\x12!.exambank.v1.ListQuestionsRequest\x1a\".exambank.v1.ListQuestionsResponse\x12\\\n" +
	"\x0fExportQuestions\x12#.exambank.v1.ExportQuestionsRequest\x1a$.exambank.v1.ExportQuestionsResponseB=Z;github.com/qforge/exambank/gen/proto/exambank/v1;exambankv1b\x06proto3"

var (
	file_exambank_v1_exambank_proto_rawDescOnce sync.Once
	file_exambank_v1_exambank_proto_rawDescData []byte
)

func file_exambank_v1_exambank_proto_rawDescGZIP() []byte {
	file_exambank_v1_exambank_proto_rawDescOnce.Do(func() {
		file_exambank_v1_exambank_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_exambank_v1_exambank_proto_rawDesc), len(file_exambank_v1_exambank_proto_rawDesc)))
	})
	return file_exambank_v1_exambank_proto_rawDescData
}

var file_exambank_v1_exambank_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_exambank_v1_exambank_proto_goTypes = []any{
	(*ProcessDocumentRequest)(nil),    // 0: exambank.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),   // 1: exambank.v1.ProcessDocumentResponse
	(*GetJobStatusRequest)(nil),       // 2: exambank.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),      // 3: exambank.v1.GetJobStatusResponse
	(*ProcessingJob)(nil),             // 4: exambank.v1.ProcessingJob
	(*BlockError)(nil),                // 5: exambank.v1.BlockError
	(*QuestionOption)(nil),            // 6: exambank.v1.QuestionOption
	(*Question)(nil),                  // 7: exambank.v1.Question
	(*ImportQuestionsRequest)(nil),    // 8: exambank.v1.ImportQuestionsRequest
	(*ImportError)(nil),               // 9: exambank.v1.ImportError
	(*ImportQuestionsResponse)(nil),   // 10: exambank.v1.ImportQuestionsResponse
	(*ValidateQuestionsRequest)(nil),  // 11: exambank.v1.ValidateQuestionsRequest
	(*ValidationIssue)(nil),           // 12: exambank.v1.ValidationIssue
	(*ValidateQuestionsResponse)(nil), // 13: exambank.v1.ValidateQuestionsResponse
	(*ListQuestionsRequest)(nil),      // 14: exambank.v1.ListQuestionsRequest
	(*ListQuestionsResponse)(nil),     // 15: exambank.v1.ListQuestionsResponse
	(*ExportQuestionsRequest)(nil),    // 16: exambank.v1.ExportQuestionsRequest
	(*ExportQuestionsResponse)(nil),   // 17: exambank.v1.ExportQuestionsResponse
}
var file_exambank_v1_exambank_proto_depIdxs = []int32{
	4,  // 0: exambank.v1.GetJobStatusResponse.job:type_name -> exambank.v1.ProcessingJob
	5,  // 1: exambank.v1.ProcessingJob.errors:type_name -> exambank.v1.BlockError
	7,  // 2: exambank.v1.ProcessingJob.results:type_name -> exambank.v1.Question
	9,  // 3: exambank.v1.ProcessingJob.import_errors:type_name -> exambank.v1.ImportError
	6,  // 4: exambank.v1.Question.options:type_name -> exambank.v1.QuestionOption
	7,  // 5: exambank.v1.ImportQuestionsRequest.questions:type_name -> exambank.v1.Question
	7,  // 6: exambank.v1.ImportError.question:type_name -> exambank.v1.Question
	9,  // 7: exambank.v1.ImportQuestionsResponse.errors:type_name -> exambank.v1.ImportError
	7,  // 8: exambank.v1.ValidateQuestionsRequest.questions:type_name -> exambank.v1.Question
	12, // 9: exambank.v1.ValidateQuestionsResponse.errors:type_name -> exambank.v1.ValidationIssue
	7,  // 10: exambank.v1.ListQuestionsResponse.questions:type_name -> exambank.v1.Question
	0,  // 11: exambank.v1.DocumentService.ProcessDocument:input_type -> exambank.v1.ProcessDocumentRequest
	2,  // 12: exambank.v1.DocumentService.GetJobStatus:input_type -> exambank.v1.GetJobStatusRequest
	8,  // 13: exambank.v1.QuestionService.ImportQuestions:input_type -> exambank.v1.ImportQuestionsRequest
	11, // 14: exambank.v1.QuestionService.ValidateQuestions:input_type -> exambank.v1.ValidateQuestionsRequest
	14, // 15: exambank.v1.QuestionService.ListQuestions:input_type -> exambank.v1.ListQuestionsRequest
	16, // 16: exambank.v1.QuestionService.ExportQuestions:input_type -> exambank.v1.ExportQuestionsRequest
	1,  // 17: exambank.v1.DocumentService.ProcessDocument:output_type -> exambank.v1.ProcessDocumentResponse
	3,  // 18: exambank.v1.DocumentService.GetJobStatus:output_type -> exambank.v1.GetJobStatusResponse
	10, // 19: exambank.v1.QuestionService.ImportQuestions:output_type -> exambank.v1.ImportQuestionsResponse
	13, // 20: exambank.v1.QuestionService.ValidateQuestions:output_type -> exambank.v1.ValidateQuestionsResponse
	15, // 21: exambank.v1.QuestionService.ListQuestions:output_type -> exambank.v1.ListQuestionsResponse
	17, // 22: exambank.v1.QuestionService.ExportQuestions:output_type -> exambank.v1.ExportQuestionsResponse
	17, // [17:23] is the sub-list for method output_type
	11, // [11:17] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_exambank_v1_exambank_proto_init() }
func file_exambank_v1_exambank_proto_init() {
	if File_exambank_v1_exambank_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_exambank_v1_exambank_proto_rawDesc), len(file_exambank_v1_exambank_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_exambank_v1_exambank_proto_goTypes,
		DependencyIndexes: file_exambank_v1_exambank_proto_depIdxs,
		MessageInfos:      file_exambank_v1_exambank_proto_msgTypes,
	}.Build()
	File_exambank_v1_exambank_proto = out.File
	file_exambank_v1_exambank_proto_goTypes = nil
	file_exambank_v1_exambank_proto_depIdxs = nil
}
