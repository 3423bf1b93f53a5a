package application

import (
	"fmt"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
)

// NicheCount is how many niches a discovery asks for.
const NicheCount = 3

// BuildDiscoverPrompt returns the niche-discovery instruction for topic. The
// topic is embedded verbatim.
func BuildDiscoverPrompt(topic string) string {
	return fmt.Sprintf(`Bạn là một chuyên gia chiến lược YouTube với kiến thức sâu rộng về các ngách (niche) thành công, bao gồm cả các ngách có RPM cao và các ý tưởng video viral.
Dựa trên kiến thức đó và chủ đề người dùng cung cấp là "%s", hãy phân tích và đề xuất %d ngách nội dung chuyên sâu.
Trả về một mảng JSON. Với mỗi ngách, hãy cung cấp các trường sau:
1. **title**: Tên ngách hấp dẫn.
2. **description**: Mô tả ngắn gọn về ngách.
3. **monetization_potential**: Đối tượng {"score", "explanation"} đánh giá tiềm năng kiếm tiền (RPM ước tính, affiliate, bán sản phẩm...).
4. **audience_potential**: Đối tượng {"score", "explanation"} đánh giá quy mô và mức độ trung thành của khán giả.
5. **competition_level**: Đối tượng {"score", "explanation"} đánh giá mức độ cạnh tranh và gợi ý cách để nổi bật.
6. **content_direction**: Gợi ý các hướng nội dung, định dạng video cụ thể (ví dụ: video phân tích, hướng dẫn, top list...).
7. **keywords**: Mảng các từ khóa tìm kiếm chính.
Mỗi "score" phải là số nguyên từ %d đến %d.
Lưu ý: với monetization_potential và audience_potential, điểm càng cao càng tốt. Với competition_level thì ngược lại: điểm càng cao nghĩa là ngách càng bão hòa, càng khó cạnh tranh.`,
		topic, NicheCount, model.MinScore, model.MaxScore)
}

// BuildScriptPrompt returns the script-writing instruction for niche.
func BuildScriptPrompt(niche model.AnalyzedNiche) string {
	return fmt.Sprintf(`Bạn là một nhà biên kịch YouTube chuyên nghiệp. Hãy viết một kịch bản video hoàn chỉnh và chi tiết cho một video YouTube có tiêu đề: "%s".

Chủ đề chính của video là: "%s".

Hướng nội dung gợi ý: %s

Kịch bản cần có cấu trúc 3 phần rõ ràng:
1. **Mở đầu (Hook):** Khoảng 15-20 giây đầu tiên, tạo sự tò mò, gây sốc hoặc đặt câu hỏi trực diện để giữ chân khán giả.
2. **Thân bài:** Chia thành các phần nhỏ (2-3 phần) để giải quyết vấn đề, cung cấp thông tin chính. Nội dung phải logic, dễ hiểu và có ví dụ minh họa.
3. **Kết luận:** Tóm tắt lại nội dung chính và đưa ra lời kêu gọi hành động (Call To Action) mạnh mẽ như like, share, subscribe, hoặc bình luận.

Giọng văn cần năng động, hấp dẫn và phù hợp với nền tảng YouTube. Trình bày kịch bản bằng Markdown.`,
		niche.Title, niche.Description, niche.ContentDirection)
}
